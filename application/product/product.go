package product

import (
	"context"

	"go.uber.org/zap"

	"github.com/mukhtarmk/ecommerce-api/constant"
	"github.com/mukhtarmk/ecommerce-api/model"
	productRepo "github.com/mukhtarmk/ecommerce-api/repository/product"
	"github.com/mukhtarmk/ecommerce-api/utils/errors"
	"github.com/mukhtarmk/ecommerce-api/utils/logger"
	"github.com/mukhtarmk/ecommerce-api/utils/metrics"
)

type ProductApp interface {
	CreateProduct(ctx context.Context, req *model.ProductCreateRequest) (*model.ProductCreateResponse, error)
	ListProducts(ctx context.Context, params model.ProductListParams) (*model.ProductListResponse, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.ProductCreateRequest) (*model.ProductCreateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.productRepo.Insert(ctx, &model.Product{
		Name:  req.Name,
		Price: req.Price,
		Sizes: req.Sizes,
	})
	if err != nil {
		logger.Error("[CreateProduct] insert product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	metrics.ProductsCreated.Inc()
	return &model.ProductCreateResponse{ID: id}, nil
}

func (s *productAppImpl) ListProducts(ctx context.Context, params model.ProductListParams) (*model.ProductListResponse, error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	data := make([]model.ProductListItem, 0, len(products))
	for _, p := range products {
		data = append(data, model.ProductListItem{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Sizes: p.Sizes,
		})
	}

	return &model.ProductListResponse{
		Data: data,
		Page: model.NewPagination(total, params.Limit, params.Offset),
	}, nil
}
