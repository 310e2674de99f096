package services

import (
	"threadline/internal/catalog"
	"threadline/internal/domain"
	"threadline/internal/repos"

	"github.com/google/uuid"
)

// ProductSource is anything that can produce the full product working set.
// The repo-backed source is primary; a static fixture source may be plugged
// in as a fallback for when the store is unreachable.
type ProductSource interface {
	ListViews() ([]domain.ProductView, error)
}

type CatalogService struct {
	Cats     *repos.CategoryRepo
	Prods    *repos.ProductRepo
	Fallback ProductSource // optional
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo, fallback ProductSource) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods, Fallback: fallback}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

// ListProducts returns the product working set, falling back to the static
// fixture source when the primary read fails and a fallback is configured.
// The bool reports whether the fallback served the data.
func (s *CatalogService) ListProducts() ([]domain.ProductView, bool, error) {
	prods, err := s.Prods.ListViews()
	if err != nil {
		if s.Fallback != nil {
			fb, ferr := s.Fallback.ListViews()
			if ferr == nil {
				return fb, true, nil
			}
		}
		return nil, false, err
	}
	return prods, false, nil
}

// FilterProducts applies the selected facets to the working set.
func (s *CatalogService) FilterProducts(category, size, color string) ([]domain.ProductView, bool, error) {
	prods, fromFallback, err := s.ListProducts()
	if err != nil {
		return nil, false, err
	}
	return catalog.Filter(prods, category, size, color), fromFallback, nil
}

func (s *CatalogService) ProductDetail(id string) (domain.Product, []domain.Variant, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		return domain.Product{}, nil, err
	}
	variants, err := s.Prods.Variants(id)
	if err != nil {
		return domain.Product{}, nil, err
	}
	return p, variants, nil
}

func (s *CatalogService) AddCategory(name string) (domain.Category, error) {
	c := domain.Category{ID: uuid.NewString(), Name: name, Slug: catalog.Slugify(name)}
	if err := s.Cats.Create(c.ID, c.Name, c.Slug); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(id string) error {
	return s.Cats.Delete(id)
}

// VariantInput is one (size, color, stock) row of the admin product form.
type VariantInput struct {
	Size  string
	Color string
	Stock int
}

func (s *CatalogService) CreateProduct(categoryID, name, description string, price int64, imageURL string, variants []VariantInput) (domain.Product, error) {
	p := domain.Product{
		ID:          uuid.NewString(),
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		Active:      true,
	}
	vs := make([]domain.Variant, 0, len(variants))
	for _, in := range variants {
		vs = append(vs, domain.Variant{
			ID:        uuid.NewString(),
			ProductID: p.ID,
			Size:      in.Size,
			Color:     in.Color,
			Stock:     in.Stock,
		})
	}
	if err := s.Prods.Create(p, vs); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(id string) error {
	return s.Prods.Delete(id)
}
