// Package handoff builds the WhatsApp checkout handoff: a human-readable
// order summary percent-encoded into a wa.me link that opens a pre-filled
// conversation with the shop's number. Pure string construction; the caller
// performs the redirect.
package handoff

import (
	"fmt"
	"net/url"
	"strings"

	"threadline/internal/domain"
)

// Message renders the order summary text. The order reference is the first
// 8 characters of the order id; the text ends with the total line. Missing
// fields render as empty text rather than an error.
func Message(o domain.Order, lines []domain.OrderLine) string {
	ref := o.ID
	if len(ref) > 8 {
		ref = ref[:8]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*New Order #%s*\n\n", ref)
	fmt.Fprintf(&b, "*Customer:* %s\n", o.CustomerName)
	b.WriteString("*Status:* Pending Payment\n\n")
	b.WriteString("*Items:*\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "- %s (%s, %s) x%d - ₹%d\n", l.ProductName, l.Size, l.Color, l.Quantity, l.Price*int64(l.Quantity))
	}
	fmt.Fprintf(&b, "\n*Total:* ₹%d", o.TotalAmount)
	return b.String()
}

// BuildURL encodes the message for the given recipient phone number.
func BuildURL(o domain.Order, lines []domain.OrderLine, recipient string) string {
	return "https://wa.me/" + recipient + "?text=" + url.QueryEscape(Message(o, lines))
}
