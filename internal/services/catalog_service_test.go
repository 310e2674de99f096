package services_test

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"threadline/internal/fixture"
	"threadline/internal/repos"
	"threadline/internal/services"
)

func newCatalogService(t *testing.T) *services.CatalogService {
	t.Helper()
	db := newTestDB(t)
	return services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db), nil)
}

func TestFilterProductsByCategory(t *testing.T) {
	svc := newCatalogService(t)
	prods, fromFallback, err := svc.FilterProducts("Men", "", "")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if fromFallback {
		t.Fatal("primary store should have served the data")
	}
	if len(prods) != 2 {
		t.Fatalf("want 2 Men products, got %d", len(prods))
	}
	for _, p := range prods {
		if p.CategoryName != "Men" {
			t.Fatalf("product %s has category %q", p.ID, p.CategoryName)
		}
	}
}

func TestFilterProductsBySizeAndColor(t *testing.T) {
	svc := newCatalogService(t)
	prods, _, err := svc.FilterProducts("", "M", "Blue")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(prods) != 1 || prods[0].ID != "tee-navy" {
		t.Fatalf("want only tee-navy, got %+v", prods)
	}
}

func TestListProductsFallsBackToFixture(t *testing.T) {
	// A bare database file with no schema makes every primary read fail.
	broken, err := sqlx.Open("sqlite", filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = broken.Close() })

	svc := services.NewCatalogService(repos.NewCategoryRepo(broken), repos.NewProductRepo(broken), fixture.New())
	prods, fromFallback, err := svc.ListProducts()
	if err != nil {
		t.Fatalf("list with fallback: %v", err)
	}
	if !fromFallback {
		t.Fatal("expected the fixture source to serve the data")
	}
	if len(prods) == 0 {
		t.Fatal("fixture source returned no products")
	}
}

func TestListProductsNoFallbackPropagatesError(t *testing.T) {
	broken, err := sqlx.Open("sqlite", filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = broken.Close() })

	svc := services.NewCatalogService(repos.NewCategoryRepo(broken), repos.NewProductRepo(broken), nil)
	if _, _, err := svc.ListProducts(); err == nil {
		t.Fatal("want error when primary fails and no fallback is set")
	}
}

func TestAddCategoryDerivesSlug(t *testing.T) {
	svc := newCatalogService(t)
	c, err := svc.AddCategory("Summer Drop")
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	if c.Slug != "summer-drop" {
		t.Fatalf("slug = %q, want %q", c.Slug, "summer-drop")
	}

	cats, err := svc.ListCategories()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	found := false
	for _, got := range cats {
		if got.ID == c.ID && got.Slug == "summer-drop" {
			found = true
		}
	}
	if !found {
		t.Fatalf("new category not listed: %+v", cats)
	}
}

func TestCreateProductWithVariants(t *testing.T) {
	svc := newCatalogService(t)
	p, err := svc.CreateProduct("cat-men", "Graphite Tee", "Slate grey heavyweight.", 799, "/media/products/graphite.jpg", []services.VariantInput{
		{Size: "M", Color: "Grey", Stock: 7},
		{Size: "L", Color: "Grey", Stock: 4},
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	got, variants, err := svc.ProductDetail(p.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got.Name != "Graphite Tee" || got.Price != 799 {
		t.Fatalf("stored product mismatch: %+v", got)
	}
	if len(variants) != 2 {
		t.Fatalf("want 2 variants, got %d", len(variants))
	}

	if err := svc.DeleteProduct(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, err := svc.ProductDetail(p.ID); err == nil {
		t.Fatal("deleted product should not resolve")
	}
}
