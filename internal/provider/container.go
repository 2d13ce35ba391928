package provider

import (
	"fmt"
	"time"

	"github.com/showcase-next/internal/config"
	"github.com/showcase-next/internal/models"
	"github.com/showcase-next/internal/pubsub"
	"github.com/showcase-next/internal/repository"
	"github.com/showcase-next/internal/service"
	"github.com/showcase-next/internal/showcase"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	Bus    *pubsub.Bus

	// Repositories
	ProductRepo repository.ProductRepository
	VariantRepo repository.VariantRepository
	MediaRepo   repository.MediaRepository

	// Services
	ProductService  *service.ProductService
	ShowcaseService *service.ShowcaseService

	// PriceSource 按配置装配的价格片段来源，供组装展示组件的调用方复用
	PriceSource showcase.PriceSource
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{
		Config: cfg,
		Bus:    pubsub.NewBus(),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.VariantRepo = repository.NewVariantRepository(db)
	c.MediaRepo = repository.NewMediaRepository(db)
}

func (c *Container) initServices() {
	c.ProductService = service.NewProductService(c.ProductRepo, c.VariantRepo, c.MediaRepo)
	c.ShowcaseService = service.NewShowcaseService(c.ProductRepo, c.VariantRepo)

	baseURL := fmt.Sprintf("http://%s:%s", c.Config.Server.Host, c.Config.Server.Port)
	c.PriceSource = showcase.NewHTTPPriceSource(
		baseURL,
		c.Config.Storefront.ProductInfoPath,
		time.Duration(c.Config.Storefront.PriceFetchTimeoutMS)*time.Millisecond,
	)
}
