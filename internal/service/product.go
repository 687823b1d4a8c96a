package service

import (
	"context"
	"strings"

	"github.com/Skotchmaster/ecommerce_api/internal/events"
	"github.com/Skotchmaster/ecommerce_api/internal/logging"
	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/internal/repo"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
)

type ProductSearcher interface {
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
}

type ProductIndexer interface {
	IndexProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
	// Index mirrors writes into the search index; nil disables mirroring.
	Index ProductIndexer
	// Searcher answers Search; nil falls back to Repo.
	Searcher ProductSearcher
}

func productErr(err error) error {
	return storeErr(err, "Product")
}

func validatePrice(price float64) error {
	if price < 0 {
		return fail(ErrValidation, "price cannot be negative")
	}
	return nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if err := requireFields(
		field{"name", req.Name != nil},
		field{"price", req.Price != nil},
	); err != nil {
		return nil, err
	}
	if err := validatePrice(*req.Price); err != nil {
		return nil, err
	}

	p := &models.Product{Name: *req.Name, Price: *req.Price}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if err := s.Repo.CreateProduct(ctx, p); err != nil {
		return nil, productErr(err)
	}

	s.reindex(ctx, p)
	publish(ctx, s.Events, events.New(events.ProductCreated, p.ID, p))
	return p, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, productErr(err)
	}
	return p, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	if err := requireFields(
		field{"name", req.Name != nil},
		field{"price", req.Price != nil},
	); err != nil {
		return nil, err
	}
	if err := validatePrice(*req.Price); err != nil {
		return nil, err
	}

	p := &models.Product{ID: id, Name: *req.Name, Price: *req.Price}
	if err := s.Repo.UpdateProduct(ctx, p); err != nil {
		return nil, productErr(err)
	}

	s.reindex(ctx, p)
	publish(ctx, s.Events, events.New(events.ProductUpdated, p.ID, p))
	return p, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return productErr(err)
	}

	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Error("unindex_product_error", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Events, events.New(events.ProductDeleted, id, nil))
	return nil
}

func (s *ProductService) GetStock(ctx context.Context, id uint) (int, error) {
	stock, err := s.Repo.GetStock(ctx, id)
	if err != nil {
		return 0, productErr(err)
	}
	return stock, nil
}

// SetStock overwrites the stock level as given; there is no floor at zero.
func (s *ProductService) SetStock(ctx context.Context, id uint, req transport.StockRequest) error {
	if err := requireFields(field{"stock", req.Stock != nil}); err != nil {
		return err
	}
	if err := s.Repo.SetStock(ctx, id, *req.Stock); err != nil {
		return productErr(err)
	}

	if s.Index != nil {
		if p, err := s.Repo.GetProduct(ctx, id); err == nil {
			s.reindex(ctx, p)
		}
	}
	publish(ctx, s.Events, events.New(events.ProductStockUpdated, id, map[string]int{"stock": *req.Stock}))
	return nil
}

func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fail(ErrValidation, "query parameter q is required")
	}

	var searcher ProductSearcher = s.Repo
	if s.Searcher != nil {
		searcher = s.Searcher
	}

	prods, err := searcher.SearchProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	if prods == nil {
		prods = []models.Product{}
	}
	return prods, nil
}

func (s *ProductService) reindex(ctx context.Context, p *models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Error("index_product_error", "product_id", p.ID, "error", err)
	}
}
