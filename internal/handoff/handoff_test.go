package handoff_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadline/internal/domain"
	"threadline/internal/handoff"
)

func sampleOrder() (domain.Order, []domain.OrderLine) {
	o := domain.Order{
		ID:           "abcdef12-3456-7890-abcd-ef1234567890",
		CustomerName: "Jane",
		Status:       domain.StatusPending,
		TotalAmount:  1198,
	}
	lines := []domain.OrderLine{
		{OrderID: o.ID, ProductName: "Tee", Size: "M", Color: "Black", Quantity: 2, Price: 599},
	}
	return o, lines
}

func TestMessageFormat(t *testing.T) {
	o, lines := sampleOrder()
	msg := handoff.Message(o, lines)

	assert.True(t, strings.HasPrefix(msg, "*New Order #abcdef12*\n"), "order ref is the first 8 id chars")
	assert.Contains(t, msg, "*Customer:* Jane\n")
	assert.Contains(t, msg, "*Status:* Pending Payment\n")
	assert.Contains(t, msg, "- Tee (M, Black) x2 - ₹1198\n")
	assert.True(t, strings.HasSuffix(msg, "*Total:* ₹1198"), "message ends with the total line")
}

func TestBuildURL(t *testing.T) {
	o, lines := sampleOrder()
	u := handoff.BuildURL(o, lines, "919876543210")

	require.True(t, strings.HasPrefix(u, "https://wa.me/919876543210?text="))

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Tee (M, Black) x2 - ₹1198")
	assert.True(t, strings.HasSuffix(text, "1198"))
}

func TestBuildURLDeterministic(t *testing.T) {
	o, lines := sampleOrder()
	assert.Equal(t, handoff.BuildURL(o, lines, "910000000000"), handoff.BuildURL(o, lines, "910000000000"))
}

// Missing fields render as empty text, never an error.
func TestMessageToleratesMissingFields(t *testing.T) {
	msg := handoff.Message(domain.Order{}, []domain.OrderLine{{}})
	assert.Contains(t, msg, "*New Order #*")
	assert.Contains(t, msg, "- (, ) x0 - ₹0")
	assert.True(t, strings.HasSuffix(msg, "*Total:* ₹0"))
}

func TestMessageMultipleLines(t *testing.T) {
	o := domain.Order{ID: "11112222-x", CustomerName: "Dev", TotalAmount: 1747}
	lines := []domain.OrderLine{
		{ProductName: "Classic Navy Tee", Size: "M", Color: "Black", Quantity: 2, Price: 599},
		{ProductName: "Essential Black Tee", Size: "S", Color: "Black", Quantity: 1, Price: 549},
	}
	msg := handoff.Message(o, lines)
	assert.Contains(t, msg, "- Classic Navy Tee (M, Black) x2 - ₹1198\n")
	assert.Contains(t, msg, "- Essential Black Tee (S, Black) x1 - ₹549\n")
	assert.True(t, strings.HasSuffix(msg, "*Total:* ₹1747"))
}
