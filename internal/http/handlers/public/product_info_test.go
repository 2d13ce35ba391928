package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/showcase-next/internal/config"
	"github.com/showcase-next/internal/models"
	"github.com/showcase-next/internal/provider"
	"github.com/showcase-next/internal/pubsub"
	"github.com/showcase-next/internal/repository"
	"github.com/showcase-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupPublicHandlerTest(t *testing.T) (*gin.Engine, *service.ProductService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:publichandler?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.ProductOption{}, &models.Variant{}, &models.MediaItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	variantRepo := repository.NewVariantRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	productSvc := service.NewProductService(productRepo, variantRepo, mediaRepo)

	container := &provider.Container{
		Config: &config.Config{
			Storefront: config.StorefrontConfig{
				Inventory: config.InventoryConfig{
					LowStockThreshold: 10,
					InStockLabel:      "In stock ({count} available)",
					LowStockLabel:     "Low stock ({count} left)",
					OutOfStockLabel:   "Out of stock",
				},
			},
		},
		Bus:             pubsub.NewBus(),
		ProductRepo:     productRepo,
		VariantRepo:     variantRepo,
		MediaRepo:       mediaRepo,
		ProductService:  productSvc,
		ShowcaseService: service.NewShowcaseService(productRepo, variantRepo),
	}

	handler := New(container)
	engine := gin.New()
	engine.GET("/api/v1/public/products/:slug/showcase", handler.GetProductShowcase)
	engine.GET("/api/v1/public/product-info", handler.GetProductInfo)
	return engine, productSvc
}

func createShowcaseProduct(t *testing.T, svc *service.ProductService, slug string) *models.Product {
	t.Helper()
	created, err := svc.Create(service.SaveProductInput{
		Slug:  slug,
		Title: "Classic Tee",
		Options: []service.OptionInput{
			{Name: "Color", Values: []string{"Red", "Blue"}},
			{Name: "Size", Values: []string{"S", "M"}},
		},
		Variants: []service.VariantInput{
			{
				OptionValues:        []string{"Red", "S"},
				Available:           true,
				Price:               decimal.NewFromFloat(19.99),
				SKU:                 "TEE-RED-S",
				InventoryManagement: "shopify",
				InventoryQuantity:   5,
			},
		},
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return created
}

func TestGetProductInfoRendersFragment(t *testing.T) {
	engine, svc := setupPublicHandlerTest(t)
	created := createShowcaseProduct(t, svc, "fragment-render")
	variantID := strconv.FormatUint(uint64(created.Variants[0].ID), 10)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/public/product-info?variant="+variantID+"&section_id=sec1", nil)
	engine.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, `id="price-sec1"`) {
		t.Fatalf("fragment missing price element: %s", body)
	}
	if !strings.Contains(body, "19.99") {
		t.Fatalf("fragment missing price value: %s", body)
	}
	if !strings.Contains(body, `id="Sku-sec1"`) || !strings.Contains(body, "TEE-RED-S") {
		t.Fatalf("fragment missing sku block: %s", body)
	}
	if !strings.Contains(body, `data-state="low_stock"`) || !strings.Contains(body, "Low stock (5 left)") {
		t.Fatalf("fragment missing inventory state: %s", body)
	}
}

func TestGetProductInfoMissingParams(t *testing.T) {
	engine, _ := setupPublicHandlerTest(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/public/product-info?variant=1", nil)
	engine.ServeHTTP(recorder, request)

	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d", resp.StatusCode)
	}
}

func TestGetProductInfoUnknownVariant(t *testing.T) {
	engine, _ := setupPublicHandlerTest(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/public/product-info?variant=999999&section_id=sec1", nil)
	engine.ServeHTTP(recorder, request)

	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("status_code want 404 got %d", resp.StatusCode)
	}
}

func TestGetProductShowcaseDocument(t *testing.T) {
	engine, svc := setupPublicHandlerTest(t)
	created := createShowcaseProduct(t, svc, "showcase-endpoint")

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/public/products/showcase-endpoint/showcase", nil)
	engine.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", recorder.Code)
	}

	var resp struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			ProductID    uint `json:"product_id"`
			OptionGroups []struct {
				Name string `json:"name"`
			} `json:"option_groups"`
			Variants []struct {
				ID      int64    `json:"id"`
				Options []string `json:"options"`
				Price   string   `json:"price"`
			} `json:"variants"`
		} `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}
	if resp.Data.ProductID != created.ID {
		t.Fatalf("product id want %d got %d", created.ID, resp.Data.ProductID)
	}
	if len(resp.Data.Variants) != 1 || resp.Data.Variants[0].Price != "19.99" {
		t.Fatalf("variants payload unexpected: %+v", resp.Data.Variants)
	}
	if len(resp.Data.Variants[0].Options) != 2 {
		t.Fatalf("variant tuple want 2 values got %v", resp.Data.Variants[0].Options)
	}
}

func TestGetProductShowcaseNotFound(t *testing.T) {
	engine, _ := setupPublicHandlerTest(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/public/products/missing-product/showcase", nil)
	engine.ServeHTTP(recorder, request)

	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("status_code want 404 got %d", resp.StatusCode)
	}
}
