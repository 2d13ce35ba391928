package repository

import (
	"strconv"
	"testing"

	"github.com/showcase-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *GormVariantRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:productrepo?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.ProductOption{}, &models.Variant{}, &models.MediaItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewProductRepository(db), NewVariantRepository(db), db
}

func createShowcaseProduct(t *testing.T, repo *GormProductRepository, slug string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:     slug,
		Title:    "Classic Tee",
		IsActive: active,
		Options: []models.ProductOption{
			{Name: "Color", Position: 0, Values: models.StringArray{"Red", "Blue"}},
			{Name: "Size", Position: 1, Values: models.StringArray{"S", "M"}},
		},
		Variants: []models.Variant{
			{
				OptionValues: models.StringArray{"Red", "S"},
				Available:    true,
				PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromFloat(19.99)),
				SKU:          "TEE-RED-S",
			},
			{
				OptionValues: models.StringArray{"Blue", "S"},
				Available:    false,
				PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromFloat(21.99)),
				SKU:          "TEE-BLUE-S",
			},
		},
		Media: []models.MediaItem{
			{MediaID: 501, Position: 1, Src: "https://cdn.example.com/red.jpg", VariantIDs: models.Int64Array{1}},
		},
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestGetBySlugPreloadsAssociationsInOrder(t *testing.T) {
	repo, _, _ := setupProductRepositoryTest(t)
	createShowcaseProduct(t, repo, "repo-preload", true)

	got, err := repo.GetBySlug("repo-preload", true)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got == nil {
		t.Fatalf("get by slug want product got nil")
	}
	if len(got.Options) != 2 {
		t.Fatalf("options want 2 got %d", len(got.Options))
	}
	if got.Options[0].Name != "Color" || got.Options[1].Name != "Size" {
		t.Fatalf("options order want Color,Size got %s,%s", got.Options[0].Name, got.Options[1].Name)
	}
	if len(got.Variants) != 2 {
		t.Fatalf("variants want 2 got %d", len(got.Variants))
	}
	if len(got.Media) != 1 {
		t.Fatalf("media want 1 got %d", len(got.Media))
	}
}

func TestGetBySlugOnlyActiveFilters(t *testing.T) {
	repo, _, _ := setupProductRepositoryTest(t)
	createShowcaseProduct(t, repo, "repo-inactive", false)

	got, err := repo.GetBySlug("repo-inactive", true)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got != nil {
		t.Fatalf("inactive product with onlyActive want nil got id %d", got.ID)
	}

	got, err = repo.GetBySlug("repo-inactive", false)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if got == nil {
		t.Fatalf("inactive product without filter want record got nil")
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	repo, _, _ := setupProductRepositoryTest(t)

	got, err := repo.GetByID("999999")
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got != nil {
		t.Fatalf("missing product want nil got id %d", got.ID)
	}
}

func TestCountBySlugExcludesOwnID(t *testing.T) {
	repo, _, _ := setupProductRepositoryTest(t)
	product := createShowcaseProduct(t, repo, "repo-count", true)

	count, err := repo.CountBySlug("repo-count", nil)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	id := formatProductID(product.ID)
	count, err = repo.CountBySlug("repo-count", &id)
	if err != nil {
		t.Fatalf("count by slug with exclude failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count excluding own id want 0 got %d", count)
	}
}

func TestReplaceVariantsForProduct(t *testing.T) {
	repo, variantRepo, _ := setupProductRepositoryTest(t)
	product := createShowcaseProduct(t, repo, "repo-replace-variants", true)

	next := []models.Variant{
		{
			OptionValues: models.StringArray{"Red", "M"},
			Available:    true,
			PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromFloat(24.99)),
			SKU:          "TEE-RED-M",
		},
	}
	if err := variantRepo.ReplaceForProduct(product.ID, next); err != nil {
		t.Fatalf("replace variants failed: %v", err)
	}

	variants, err := variantRepo.ListByProduct(product.ID)
	if err != nil {
		t.Fatalf("list variants failed: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("variants after replace want 1 got %d", len(variants))
	}
	if variants[0].SKU != "TEE-RED-M" {
		t.Fatalf("variant sku want TEE-RED-M got %s", variants[0].SKU)
	}
}

func TestReplaceOptionsForProduct(t *testing.T) {
	repo, _, _ := setupProductRepositoryTest(t)
	product := createShowcaseProduct(t, repo, "repo-replace-options", true)

	if err := repo.ReplaceOptions(product.ID, []models.ProductOption{
		{Name: "Material", Position: 0, Values: models.StringArray{"Cotton"}},
	}); err != nil {
		t.Fatalf("replace options failed: %v", err)
	}

	got, err := repo.GetByID(formatProductID(product.ID))
	if err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if len(got.Options) != 1 || got.Options[0].Name != "Material" {
		t.Fatalf("options after replace want Material got %+v", got.Options)
	}
}

func formatProductID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
