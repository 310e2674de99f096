// Package catalog holds the pure pieces of the storefront catalog: facet
// filtering of a product list and category slug derivation.
package catalog

import (
	"regexp"
	"strings"

	"threadline/internal/domain"
)

// Filter returns the products matching every selected facet. An empty facet
// value means no constraint on that facet. Size and color are each satisfied
// when ANY variant of the product carries the value; the two facets are
// checked independently, not against a single variant.
func Filter(products []domain.ProductView, category, size, color string) []domain.ProductView {
	out := products
	if category != "" {
		out = keep(out, func(p domain.ProductView) bool { return p.CategoryName == category })
	}
	if size != "" {
		out = keep(out, func(p domain.ProductView) bool { return anyVariant(p, func(v domain.Variant) bool { return v.Size == size }) })
	}
	if color != "" {
		out = keep(out, func(p domain.ProductView) bool { return anyVariant(p, func(v domain.Variant) bool { return v.Color == color }) })
	}
	return out
}

func keep(in []domain.ProductView, pred func(domain.ProductView) bool) []domain.ProductView {
	out := make([]domain.ProductView, 0, len(in))
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func anyVariant(p domain.ProductView, pred func(domain.Variant) bool) bool {
	for _, v := range p.Variants {
		if pred(v) {
			return true
		}
	}
	return false
}

// Sizes returns the distinct sizes of a variant list in first-seen order.
func Sizes(variants []domain.Variant) []string {
	return distinct(variants, func(v domain.Variant) string { return v.Size })
}

// Colors returns the distinct colors, narrowed to one size when given.
func Colors(variants []domain.Variant, size string) []string {
	if size == "" {
		return distinct(variants, func(v domain.Variant) string { return v.Color })
	}
	narrowed := make([]domain.Variant, 0, len(variants))
	for _, v := range variants {
		if v.Size == size {
			narrowed = append(narrowed, v)
		}
	}
	return distinct(narrowed, func(v domain.Variant) string { return v.Color })
}

func distinct(variants []domain.Variant, key func(domain.Variant) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, v := range variants {
		k := key(v)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

var reSpace = regexp.MustCompile(`\s+`)

// Slugify lowercases a category name and collapses whitespace runs to single
// hyphens: "New Arrivals" -> "new-arrivals".
func Slugify(name string) string {
	return reSpace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
