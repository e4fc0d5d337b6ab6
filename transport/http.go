package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	orderapp "github.com/mukhtarmk/ecommerce-api/application/order"
	productapp "github.com/mukhtarmk/ecommerce-api/application/product"
	"github.com/mukhtarmk/ecommerce-api/constant"
	"github.com/mukhtarmk/ecommerce-api/model"
	"github.com/mukhtarmk/ecommerce-api/utils/errors"
	validatorx "github.com/mukhtarmk/ecommerce-api/utils/validator"
)

type RestHandler struct {
	ProductApp productapp.ProductApp
	OrderApp   orderapp.OrderApp
}

func NewTransport(ProductApp productapp.ProductApp, OrderApp orderapp.OrderApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ProductApp: ProductApp,
		OrderApp:   OrderApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	// Catalog and order routes
	mux.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{userId}", rh.ListOrders).Methods(http.MethodGet)

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())
	mux.Use(MetricsMiddleware())

	return mux
}

// CreateProduct handler
// @Summary Create product
// @Description Create a new catalog product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.ProductCreateRequest true "Product Create Request"
// @Success 201 {object} model.ProductCreateResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 422 {object} transport.ErrorResponse
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ProductCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	if s.ProductApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ProductApp.CreateProduct(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListProducts handler
// @Summary List products
// @Description List catalog products with optional name/size filters and pagination
// @Tags Products
// @Produce json
// @Param name query string false "Case-insensitive name substring"
// @Param size query string false "Exact size match"
// @Param limit query int false "Window size (default 10)"
// @Param offset query int false "Window offset (default 0)"
// @Success 200 {object} model.ProductListResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, offset, err := parseWindow(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if s.ProductApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	params := model.ProductListParams{
		Name:   r.URL.Query().Get("name"),
		Size:   r.URL.Query().Get("size"),
		Limit:  limit,
		Offset: offset,
	}

	res, err := s.ProductApp.ListProducts(ctx, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateOrder handler
// @Summary Create order
// @Description Create an order; every referenced product must exist
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.OrderCreateRequest true "Order Create Request"
// @Success 201 {object} model.OrderCreateResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 422 {object} transport.ErrorResponse
// @Router /orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	if s.OrderApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListOrders handler
// @Summary List orders per user
// @Description List a user's orders with enriched line items and totals
// @Tags Orders
// @Produce json
// @Param userId path string true "User identifier (case-insensitive)"
// @Param limit query int false "Window size (default 10)"
// @Param offset query int false "Window offset (default 0)"
// @Success 200 {object} model.OrderListResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /orders/{userId} [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, offset, err := parseWindow(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if s.OrderApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	userID := mux.Vars(r)["userId"]

	res, err := s.OrderApp.ListOrders(ctx, userID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
