// Package fixture provides a static demo catalog used as a fallback data
// source when the primary store is unreachable, so the shop stays browsable.
package fixture

import "threadline/internal/domain"

type Source struct{}

func New() *Source { return &Source{} }

func (s *Source) ListViews() ([]domain.ProductView, error) {
	return []domain.ProductView{
		{
			Product: domain.Product{
				ID: "fix-navy", CategoryID: "cat-men", Name: "Classic Navy Tee",
				Description: "Heavyweight cotton crew neck in deep navy.",
				Price:       599, ImageURL: "/media/products/tee-navy.jpg", Active: true,
			},
			CategoryName: "Men",
			Variants: []domain.Variant{
				{ID: "fix-navy-m-blk", ProductID: "fix-navy", Size: "M", Color: "Black", Stock: 12},
				{ID: "fix-navy-l-blk", ProductID: "fix-navy", Size: "L", Color: "Black", Stock: 8},
			},
		},
		{
			Product: domain.Product{
				ID: "fix-red", CategoryID: "cat-women", Name: "Scarlet Crop Tee",
				Description: "Cropped fit in scarlet red, soft combed cotton.",
				Price:       649, ImageURL: "/media/products/tee-red.jpg", Active: true,
			},
			CategoryName: "Women",
			Variants: []domain.Variant{
				{ID: "fix-red-s-red", ProductID: "fix-red", Size: "S", Color: "Red", Stock: 6},
				{ID: "fix-red-m-red", ProductID: "fix-red", Size: "M", Color: "Red", Stock: 4},
			},
		},
	}, nil
}
