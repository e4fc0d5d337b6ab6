package order_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	apporder "github.com/mukhtarmk/ecommerce-api/application/order"
	"github.com/mukhtarmk/ecommerce-api/cmd/config"
	"github.com/mukhtarmk/ecommerce-api/constant"
	ordermocks "github.com/mukhtarmk/ecommerce-api/mocks/repository/order"
	productmocks "github.com/mukhtarmk/ecommerce-api/mocks/repository/product"
	redismocks "github.com/mukhtarmk/ecommerce-api/mocks/repository/redis"
	"github.com/mukhtarmk/ecommerce-api/model"
	productrepo "github.com/mukhtarmk/ecommerce-api/repository/product"
	cerr "github.com/mukhtarmk/ecommerce-api/utils/errors"
)

// Note: order.go checks publisher and cache repository for nil, so tests can
// leave both unset unless they exercise the cache path.

func i64(v int64) *int64 { return &v }

func TestOrderApp_CreateOrder(t *testing.T) {
	type fields struct {
		config      *config.Config
		orderRepo   *ordermocks.OrderRepository
		productRepo *productmocks.ProductRepository
		cacheRepo   *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.OrderCreateRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.OrderCreateResponse
		wantErr  bool
		errCode  constant.ErrorType
		wantMsg  string
	}{
		{
			name: "success: create order with single item",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderCreateRequest{
					UserID: "u1",
					Items: []model.OrderItemRequest{
						{ProductDetails: model.ProductRef{ProductID: "p1"}, Qty: 2},
					},
				},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, model.ProductID("p1")).
					Return(&model.Product{ID: "p1", Name: "Shirt", Price: 10}, nil).
					Once()
				f.orderRepo.
					On("Insert", mock.Anything, mock.MatchedBy(func(rec *model.OrderRecord) bool {
						return rec.UserID == "u1" &&
							len(rec.Items) == 1 &&
							rec.Items[0].ProductID == "p1" &&
							rec.Items[0].Qty == 2
					})).
					Return(model.OrderID("o1"), nil).
					Once()
			},
			want:    &model.OrderCreateResponse{ID: "o1"},
			wantErr: false,
		},
		{
			name: "success: empty items accepted",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderCreateRequest{UserID: "u1", Items: []model.OrderItemRequest{}},
			},
			mockCall: func(f fields) {
				f.orderRepo.
					On("Insert", mock.Anything, mock.MatchedBy(func(rec *model.OrderRecord) bool {
						return rec.UserID == "u1" && len(rec.Items) == 0
					})).
					Return(model.OrderID("o2"), nil).
					Once()
			},
			want:    &model.OrderCreateResponse{ID: "o2"},
			wantErr: false,
		},
		{
			name: "success: cache hit skips store lookup",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				cacheRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderCreateRequest{
					UserID: "u1",
					Items: []model.OrderItemRequest{
						{ProductDetails: model.ProductRef{ProductID: "p1"}, Qty: 1},
					},
				},
			},
			mockCall: func(f fields) {
				f.cacheRepo.
					On("GetProduct", mock.Anything, model.ProductID("p1")).
					Return(&model.Product{ID: "p1", Name: "Shirt", Price: 10}, nil).
					Once()
				f.orderRepo.
					On("Insert", mock.Anything, mock.Anything).
					Return(model.OrderID("o3"), nil).
					Once()
			},
			want:    &model.OrderCreateResponse{ID: "o3"},
			wantErr: false,
		},
		{
			name: "error: non-positive qty rejected before any store call",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderCreateRequest{
					UserID: "u1",
					Items: []model.OrderItemRequest{
						{ProductDetails: model.ProductRef{ProductID: "p1"}, Qty: 0},
					},
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: missing product aborts the whole order",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderCreateRequest{
					UserID: "u1",
					Items: []model.OrderItemRequest{
						{ProductDetails: model.ProductRef{ProductID: "p1"}, Qty: 2},
						{ProductDetails: model.ProductRef{ProductID: "missing"}, Qty: 1},
					},
				},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, model.ProductID("p1")).
					Return(&model.Product{ID: "p1", Name: "Shirt", Price: 10}, nil).
					Once()
				f.productRepo.
					On("GetByID", mock.Anything, model.ProductID("missing")).
					Return(nil, productrepo.ErrNotFound).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrProductNotFound,
			wantMsg: "Product missing not found",
		},
		{
			name: "error: product lookup store failure",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderCreateRequest{
					UserID: "u1",
					Items: []model.OrderItemRequest{
						{ProductDetails: model.ProductRef{ProductID: "p1"}, Qty: 2},
					},
				},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, model.ProductID("p1")).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: insert order fails",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderCreateRequest{
					UserID: "u1",
					Items: []model.OrderItemRequest{
						{ProductDetails: model.ProductRef{ProductID: "p1"}, Qty: 2},
					},
				},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, model.ProductID("p1")).
					Return(&model.Product{ID: "p1", Name: "Shirt", Price: 10}, nil).
					Once()
				f.orderRepo.
					On("Insert", mock.Anything, mock.Anything).
					Return(model.OrderID(""), errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			var app apporder.OrderApp
			if tt.fields.cacheRepo != nil {
				app = apporder.NewOrderApp(tt.fields.config, tt.fields.orderRepo, tt.fields.productRepo, tt.fields.cacheRepo, nil)
			} else {
				app = apporder.NewOrderApp(tt.fields.config, tt.fields.orderRepo, tt.fields.productRepo, nil, nil)
			}

			got, err := app.CreateOrder(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.wantMsg != "" && ce.Error() != tt.wantMsg {
					t.Fatalf("message = %q, want %q", ce.Error(), tt.wantMsg)
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreateOrder() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOrderApp_ListOrders(t *testing.T) {
	type fields struct {
		config      *config.Config
		orderRepo   *ordermocks.OrderRepository
		productRepo *productmocks.ProductRepository
		cacheRepo   *redismocks.Repository
	}
	type args struct {
		ctx    context.Context
		userID string
		limit  int64
		offset int64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.OrderListResponse
		wantErr  bool
	}{
		{
			name: "success: single order enriched with current product data",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{ctx: context.Background(), userID: "u1", limit: 10, offset: 0},
			mockCall: func(f fields) {
				records := []model.OrderRecord{
					{ID: "o1", UserID: "u1", Items: []model.OrderItemRecord{{ProductID: "p1", Qty: 2}}},
				}
				f.orderRepo.
					On("ListByUser", mock.Anything, "u1", int64(10), int64(0)).
					Return(records, int64(1), nil).
					Once()
				f.productRepo.
					On("GetByID", mock.Anything, model.ProductID("p1")).
					Return(&model.Product{ID: "p1", Name: "Shirt", Price: 10}, nil).
					Once()
			},
			want: &model.OrderListResponse{
				Data: []model.OrderSummary{
					{
						ID:     "o1",
						UserID: "u1",
						Items: []model.EnrichedOrderItem{
							{ProductDetails: model.ProductDetails{ProductID: "p1", Name: "Shirt"}, Qty: 2},
						},
						Total: 20,
					},
				},
				Page:  model.Pagination{Next: nil, Limit: 10, Previous: nil},
				Total: 20,
			},
			wantErr: false,
		},
		{
			name: "success: missing products dropped silently",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{ctx: context.Background(), userID: "u1", limit: 10, offset: 0},
			mockCall: func(f fields) {
				records := []model.OrderRecord{
					{ID: "o1", UserID: "u1", Items: []model.OrderItemRecord{
						{ProductID: "p1", Qty: 2},
						{ProductID: "gone", Qty: 7},
					}},
					{ID: "o2", UserID: "u1", Items: []model.OrderItemRecord{
						{ProductID: "gone", Qty: 1},
					}},
				}
				f.orderRepo.
					On("ListByUser", mock.Anything, "u1", int64(10), int64(0)).
					Return(records, int64(2), nil).
					Once()
				f.productRepo.
					On("GetByID", mock.Anything, model.ProductID("p1")).
					Return(&model.Product{ID: "p1", Name: "Shirt", Price: 10}, nil).
					Once()
				f.productRepo.
					On("GetByID", mock.Anything, model.ProductID("gone")).
					Return(nil, productrepo.ErrNotFound).
					Twice()
			},
			want: &model.OrderListResponse{
				Data: []model.OrderSummary{
					{
						ID:     "o1",
						UserID: "u1",
						Items: []model.EnrichedOrderItem{
							{ProductDetails: model.ProductDetails{ProductID: "p1", Name: "Shirt"}, Qty: 2},
						},
						Total: 20,
					},
					{
						ID:     "o2",
						UserID: "u1",
						Items:  []model.EnrichedOrderItem{},
						Total:  0,
					},
				},
				Page:  model.Pagination{Next: nil, Limit: 10, Previous: nil},
				Total: 20,
			},
			wantErr: false,
		},
		{
			name: "success: no matching orders",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{ctx: context.Background(), userID: "nobody", limit: 10, offset: 0},
			mockCall: func(f fields) {
				f.orderRepo.
					On("ListByUser", mock.Anything, "nobody", int64(10), int64(0)).
					Return([]model.OrderRecord{}, int64(0), nil).
					Once()
			},
			want: &model.OrderListResponse{
				Data:  []model.OrderSummary{},
				Page:  model.Pagination{Next: nil, Limit: 10, Previous: nil},
				Total: 0,
			},
			wantErr: false,
		},
		{
			name: "success: cache miss populates cache with configured ttl",
			fields: fields{
				config: &config.Config{
					Redis: config.RedisConfig{ProductCacheTTL: 5 * time.Minute},
				},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				cacheRepo:   redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), userID: "u1", limit: 10, offset: 0},
			mockCall: func(f fields) {
				records := []model.OrderRecord{
					{ID: "o1", UserID: "u1", Items: []model.OrderItemRecord{{ProductID: "p1", Qty: 3}}},
				}
				f.orderRepo.
					On("ListByUser", mock.Anything, "u1", int64(10), int64(0)).
					Return(records, int64(1), nil).
					Once()
				f.cacheRepo.
					On("GetProduct", mock.Anything, model.ProductID("p1")).
					Return(nil, nil).
					Once()
				product := &model.Product{ID: "p1", Name: "Shirt", Price: 10}
				f.productRepo.
					On("GetByID", mock.Anything, model.ProductID("p1")).
					Return(product, nil).
					Once()
				f.cacheRepo.
					On("SetProduct", mock.Anything, product, 5*time.Minute).
					Return(nil).
					Once()
			},
			want: &model.OrderListResponse{
				Data: []model.OrderSummary{
					{
						ID:     "o1",
						UserID: "u1",
						Items: []model.EnrichedOrderItem{
							{ProductDetails: model.ProductDetails{ProductID: "p1", Name: "Shirt"}, Qty: 3},
						},
						Total: 30,
					},
				},
				Page:  model.Pagination{Next: nil, Limit: 10, Previous: nil},
				Total: 30,
			},
			wantErr: false,
		},
		{
			name: "success: second window of a larger result set",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{ctx: context.Background(), userID: "u1", limit: 5, offset: 5},
			mockCall: func(f fields) {
				f.orderRepo.
					On("ListByUser", mock.Anything, "u1", int64(5), int64(5)).
					Return([]model.OrderRecord{
						{ID: "o6", UserID: "u1", Items: []model.OrderItemRecord{}},
					}, int64(8), nil).
					Once()
			},
			want: &model.OrderListResponse{
				Data: []model.OrderSummary{
					{ID: "o6", UserID: "u1", Items: []model.EnrichedOrderItem{}, Total: 0},
				},
				Page:  model.Pagination{Next: nil, Limit: 5, Previous: i64(0)},
				Total: 0,
			},
			wantErr: false,
		},
		{
			name: "error: repository ListByUser returns error",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{ctx: context.Background(), userID: "u1", limit: 10, offset: 0},
			mockCall: func(f fields) {
				f.orderRepo.
					On("ListByUser", mock.Anything, "u1", int64(10), int64(0)).
					Return(nil, int64(0), errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "error: product lookup store failure during enrichment",
			fields: fields{
				config:      &config.Config{},
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{ctx: context.Background(), userID: "u1", limit: 10, offset: 0},
			mockCall: func(f fields) {
				f.orderRepo.
					On("ListByUser", mock.Anything, "u1", int64(10), int64(0)).
					Return([]model.OrderRecord{
						{ID: "o1", UserID: "u1", Items: []model.OrderItemRecord{{ProductID: "p1", Qty: 1}}},
					}, int64(1), nil).
					Once()
				f.productRepo.
					On("GetByID", mock.Anything, model.ProductID("p1")).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			var app apporder.OrderApp
			if tt.fields.cacheRepo != nil {
				app = apporder.NewOrderApp(tt.fields.config, tt.fields.orderRepo, tt.fields.productRepo, tt.fields.cacheRepo, nil)
			} else {
				app = apporder.NewOrderApp(tt.fields.config, tt.fields.orderRepo, tt.fields.productRepo, nil, nil)
			}

			got, err := app.ListOrders(tt.args.ctx, tt.args.userID, tt.args.limit, tt.args.offset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListOrders() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInternal])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListOrders() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
