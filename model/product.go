package model

import (
	"github.com/mukhtarmk/ecommerce-api/constant"
	"github.com/mukhtarmk/ecommerce-api/utils/errors"
)

// ProductID is the store-generated product identifier. It is a distinct type
// so it cannot be mixed up with other string fields; the wire representation
// stays a plain string.
type ProductID string

func (id ProductID) String() string { return string(id) }

type SizeItem struct {
	Size     string `json:"size" bson:"size" validate:"required"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

func (s SizeItem) Validate() error {
	if s.Quantity <= 0 {
		return errors.SetCustomErrorWithMessage(constant.ErrValidation, "quantity must be positive")
	}
	return nil
}

// Product is the stored catalog record. Products are create-only: no update
// or delete operation exists in this service.
type Product struct {
	ID    ProductID  `json:"id"`
	Name  string     `json:"name"`
	Price float64    `json:"price"`
	Sizes []SizeItem `json:"sizes"`
}

type ProductCreateRequest struct {
	Name  string     `json:"name" validate:"required"`
	Price float64    `json:"price"`
	Sizes []SizeItem `json:"sizes" validate:"required,dive"`
}

// Validate enforces the field constraints before any store interaction.
func (r *ProductCreateRequest) Validate() error {
	if r.Price <= 0 {
		return errors.SetCustomErrorWithMessage(constant.ErrValidation, "price must be positive")
	}
	for _, s := range r.Sizes {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type ProductCreateResponse struct {
	ID ProductID `json:"id"`
}

type ProductListItem struct {
	ID    ProductID  `json:"id"`
	Name  string     `json:"name"`
	Price float64    `json:"price"`
	Sizes []SizeItem `json:"sizes"`
}

// ProductListParams are the typed listing filters; Name matches as a
// case-insensitive substring, Size as an exact match against any size entry.
type ProductListParams struct {
	Name   string
	Size   string
	Limit  int64
	Offset int64
}

type ProductListResponse struct {
	Data []ProductListItem `json:"data"`
	Page Pagination        `json:"page"`
}
