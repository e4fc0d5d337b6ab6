package model

import (
	"github.com/mukhtarmk/ecommerce-api/constant"
	"github.com/mukhtarmk/ecommerce-api/utils/errors"
)

// OrderID is the store-generated order identifier.
type OrderID string

func (id OrderID) String() string { return string(id) }

// OrderItemRecord is the flattened line item kept at storage time: only the
// product reference and quantity, never the product name or price.
type OrderItemRecord struct {
	ProductID ProductID `bson:"productId"`
	Qty       int       `bson:"qty"`
}

// OrderRecord is the stored order. Orders are create-only.
type OrderRecord struct {
	ID     OrderID
	UserID string
	Items  []OrderItemRecord
}

type ProductRef struct {
	ProductID ProductID `json:"productId" validate:"required"`
}

type OrderItemRequest struct {
	ProductDetails ProductRef `json:"productDetails"`
	Qty            int        `json:"qty"`
}

func (i OrderItemRequest) Validate() error {
	if i.Qty <= 0 {
		return errors.SetCustomErrorWithMessage(constant.ErrValidation, "qty must be positive")
	}
	return nil
}

type OrderCreateRequest struct {
	UserID string             `json:"userId" validate:"required"`
	Items  []OrderItemRequest `json:"items" validate:"required,dive"`
}

// Validate cascades over the line items. An empty items list is accepted.
func (r *OrderCreateRequest) Validate() error {
	for _, item := range r.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type OrderCreateResponse struct {
	ID OrderID `json:"id"`
}

// ProductDetails is the read-time enrichment of a line item with the current
// product name. Price feeds the total but is not echoed per item.
type ProductDetails struct {
	ProductID ProductID `json:"productId"`
	Name      string    `json:"name"`
}

type EnrichedOrderItem struct {
	ProductDetails ProductDetails `json:"productDetails"`
	Qty            int            `json:"qty"`
}

type OrderSummary struct {
	ID     OrderID             `json:"id"`
	UserID string              `json:"userId"`
	Items  []EnrichedOrderItem `json:"items"`
	Total  float64             `json:"total"`
}

type OrderListResponse struct {
	Data  []OrderSummary `json:"data"`
	Page  Pagination     `json:"page"`
	Total float64        `json:"total"`
}
