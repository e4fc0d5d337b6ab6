package model_test

import (
	"errors"
	"testing"

	"github.com/mukhtarmk/ecommerce-api/model"
	cerr "github.com/mukhtarmk/ecommerce-api/utils/errors"
)

func TestSizeItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    model.SizeItem
		wantErr bool
	}{
		{name: "positive quantity", item: model.SizeItem{Size: "M", Quantity: 5}, wantErr: false},
		{name: "zero quantity", item: model.SizeItem{Size: "M", Quantity: 0}, wantErr: true},
		{name: "negative quantity", item: model.SizeItem{Size: "L", Quantity: -1}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorHTTPCode() != 422 {
					t.Fatalf("http code = %d, want 422", ce.ErrorHTTPCode())
				}
			}
		})
	}
}

func TestProductCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     model.ProductCreateRequest
		wantErr bool
		wantMsg string
	}{
		{
			name: "valid product",
			req: model.ProductCreateRequest{
				Name:  "Shirt",
				Price: 10,
				Sizes: []model.SizeItem{{Size: "M", Quantity: 5}},
			},
			wantErr: false,
		},
		{
			name:    "zero price",
			req:     model.ProductCreateRequest{Name: "Shirt", Price: 0},
			wantErr: true,
			wantMsg: "price must be positive",
		},
		{
			name:    "negative price",
			req:     model.ProductCreateRequest{Name: "Shirt", Price: -9.5},
			wantErr: true,
			wantMsg: "price must be positive",
		},
		{
			name: "bad size quantity cascades",
			req: model.ProductCreateRequest{
				Name:  "Shirt",
				Price: 10,
				Sizes: []model.SizeItem{{Size: "M", Quantity: 5}, {Size: "L", Quantity: 0}},
			},
			wantErr: true,
			wantMsg: "quantity must be positive",
		},
		{
			name:    "empty sizes valid",
			req:     model.ProductCreateRequest{Name: "Shirt", Price: 10, Sizes: []model.SizeItem{}},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err.Error() != tt.wantMsg {
				t.Fatalf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestOrderCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     model.OrderCreateRequest
		wantErr bool
	}{
		{
			name: "valid order",
			req: model.OrderCreateRequest{
				UserID: "u1",
				Items:  []model.OrderItemRequest{{ProductDetails: model.ProductRef{ProductID: "p1"}, Qty: 2}},
			},
			wantErr: false,
		},
		{
			name:    "empty items accepted",
			req:     model.OrderCreateRequest{UserID: "u1", Items: []model.OrderItemRequest{}},
			wantErr: false,
		},
		{
			name: "zero qty rejected",
			req: model.OrderCreateRequest{
				UserID: "u1",
				Items:  []model.OrderItemRequest{{ProductDetails: model.ProductRef{ProductID: "p1"}, Qty: 0}},
			},
			wantErr: true,
		},
		{
			name: "negative qty rejected",
			req: model.OrderCreateRequest{
				UserID: "u1",
				Items:  []model.OrderItemRequest{{ProductDetails: model.ProductRef{ProductID: "p1"}, Qty: -3}},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
