package main

import (
	"github.com/showcase-next/internal/config"
	"github.com/showcase-next/internal/constants"
	"github.com/showcase-next/internal/logger"
	"github.com/showcase-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	media5 := int64(501)
	media6 := int64(502)

	// 添加演示商品
	products := []models.Product{
		{
			Slug:        "classic-tee",
			Title:       "Classic Tee",
			Description: "经典圆领短袖，柔软亲肤，多色多码可选",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800",
			}),
			IsActive: true,
			Options: []models.ProductOption{
				{Name: "Color", Position: 0, Values: models.StringArray{"Red", "Blue"}},
				{Name: "Size", Position: 1, Values: models.StringArray{"S", "M"}},
			},
			Variants: []models.Variant{
				{
					OptionValues:        models.StringArray{"Red", "S"},
					Available:           true,
					PriceAmount:         models.NewMoneyFromDecimal(decimal.NewFromFloat(19.99)),
					SKU:                 "TEE-RED-S",
					InventoryManagement: constants.InventoryManagementTracked,
					InventoryQuantity:   5,
					FeaturedMediaID:     &media5,
				},
				{
					OptionValues:        models.StringArray{"Red", "M"},
					Available:           true,
					PriceAmount:         models.NewMoneyFromDecimal(decimal.NewFromFloat(19.99)),
					SKU:                 "TEE-RED-M",
					InventoryManagement: constants.InventoryManagementTracked,
					InventoryQuantity:   0,
				},
				{
					OptionValues:        models.StringArray{"Blue", "S"},
					Available:           false,
					PriceAmount:         models.NewMoneyFromDecimal(decimal.NewFromFloat(21.99)),
					SKU:                 "TEE-BLUE-S",
					InventoryManagement: constants.InventoryManagementTracked,
					InventoryQuantity:   12,
					FeaturedMediaID:     &media6,
				},
			},
			Media: []models.MediaItem{
				{
					MediaID:  media5,
					Position: 1,
					Src:      "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800",
					Alt:      "Classic Tee - Red",
				},
				{
					MediaID:  media6,
					Position: 2,
					Src:      "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=800",
					Alt:      "Classic Tee - Blue",
				},
			},
		},
		{
			Slug:        "canvas-tote",
			Title:       "Canvas Tote",
			Description: "单款无选项帆布包，日常通勤容量",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
			}),
			IsActive: true,
			Variants: []models.Variant{
				{
					OptionValues: models.StringArray{},
					Available:    true,
					PriceAmount:  models.NewMoneyFromDecimal(decimal.NewFromFloat(12.50)),
					SKU:          "TOTE-NAT",
				},
			},
			Media: []models.MediaItem{
				{
					MediaID:  601,
					Position: 1,
					Src:      "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
					Alt:      "Canvas Tote",
				},
			},
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	stdLog.Println("Seed finished")
}
