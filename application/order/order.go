package order

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mukhtarmk/ecommerce-api/cmd/config"
	"github.com/mukhtarmk/ecommerce-api/constant"
	"github.com/mukhtarmk/ecommerce-api/model"
	orderRepo "github.com/mukhtarmk/ecommerce-api/repository/order"
	productRepo "github.com/mukhtarmk/ecommerce-api/repository/product"
	redisRepo "github.com/mukhtarmk/ecommerce-api/repository/redis"
	"github.com/mukhtarmk/ecommerce-api/thirdparty/rabbitmq"
	"github.com/mukhtarmk/ecommerce-api/utils/errors"
	"github.com/mukhtarmk/ecommerce-api/utils/logger"
	"github.com/mukhtarmk/ecommerce-api/utils/metrics"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.OrderCreateRequest) (*model.OrderCreateResponse, error)
	ListOrders(ctx context.Context, userID string, limit, offset int64) (*model.OrderListResponse, error)
}

type orderAppImpl struct {
	config      *config.Config
	orderRepo   orderRepo.OrderRepository
	productRepo productRepo.ProductRepository
	cacheRepo   redisRepo.Repository
	publisher   *rabbitmq.Publisher
}

func NewOrderApp(config *config.Config, orderRepo orderRepo.OrderRepository, productRepo productRepo.ProductRepository, cacheRepo redisRepo.Repository, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{config: config, orderRepo: orderRepo, productRepo: productRepo, cacheRepo: cacheRepo, publisher: publisher}
}

// lookupProduct resolves a product reference through the cache, falling back
// to the store. Returns (nil, nil) when the product does not exist.
func (s *orderAppImpl) lookupProduct(ctx context.Context, id model.ProductID) (*model.Product, error) {
	if s.cacheRepo != nil {
		cached, err := s.cacheRepo.GetProduct(ctx, id)
		if err != nil {
			metrics.ProductCacheOps.WithLabelValues("error").Inc()
			logger.Warn("[lookupProduct] cache get", zap.String("product_id", id.String()), zap.String("error", err.Error()))
		} else if cached != nil {
			metrics.ProductCacheOps.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.ProductCacheOps.WithLabelValues("miss").Inc()
		}
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if err == productRepo.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetProduct(ctx, product, s.config.Redis.ProductCacheTTL); err != nil {
			logger.Warn("[lookupProduct] cache set", zap.String("product_id", id.String()), zap.String("error", err.Error()))
		}
	}

	return product, nil
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.OrderCreateRequest) (*model.OrderCreateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Validate every product reference before the single insert: the first
	// missing product aborts the whole order and nothing is persisted.
	items := make([]model.OrderItemRecord, 0, len(req.Items))
	for _, item := range req.Items {
		productID := item.ProductDetails.ProductID
		product, err := s.lookupProduct(ctx, productID)
		if err != nil {
			logger.Error("[CreateOrder] get product", zap.String("product_id", productID.String()), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if product == nil {
			return nil, errors.SetCustomErrorWithMessage(constant.ErrProductNotFound,
				fmt.Sprintf("Product %s not found", productID))
		}
		items = append(items, model.OrderItemRecord{ProductID: productID, Qty: item.Qty})
	}

	orderID, err := s.orderRepo.Insert(ctx, &model.OrderRecord{
		UserID: req.UserID,
		Items:  items,
	})
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	metrics.OrdersCreated.Inc()

	if s.publisher != nil {
		msg := rabbitmq.OrderCreatedMessage{
			OrderID:   orderID.String(),
			UserID:    req.UserID,
			ItemCount: len(items),
			CreatedAt: time.Now().UTC(),
		}
		if err := s.publisher.PublishOrderCreated(msg); err != nil {
			logger.Error("[CreateOrder] publish order created", zap.String("error", err.Error()))
		}
	}

	return &model.OrderCreateResponse{ID: orderID}, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, userID string, limit, offset int64) (*model.OrderListResponse, error) {
	records, total, err := s.orderRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		logger.Error("[ListOrders] error orderRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	data := make([]model.OrderSummary, 0, len(records))
	var pageTotal float64

	for _, record := range records {
		items := make([]model.EnrichedOrderItem, 0, len(record.Items))
		var orderTotal float64

		for _, item := range record.Items {
			product, err := s.lookupProduct(ctx, item.ProductID)
			if err != nil {
				logger.Error("[ListOrders] get product", zap.String("product_id", item.ProductID.String()), zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			if product == nil {
				// The referenced product no longer exists; drop the line
				// item instead of failing the whole order.
				continue
			}
			items = append(items, model.EnrichedOrderItem{
				ProductDetails: model.ProductDetails{
					ProductID: item.ProductID,
					Name:      product.Name,
				},
				Qty: item.Qty,
			})
			orderTotal += float64(item.Qty) * product.Price
		}

		data = append(data, model.OrderSummary{
			ID:     record.ID,
			UserID: record.UserID,
			Items:  items,
			Total:  orderTotal,
		})
		pageTotal += orderTotal
	}

	return &model.OrderListResponse{
		Data:  data,
		Page:  model.NewPagination(total, limit, offset),
		Total: pageTotal,
	}, nil
}
