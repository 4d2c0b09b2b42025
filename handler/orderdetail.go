package handler

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/stockroom/store"
)

type OrderDetailCreate struct {
	OrderID    int64   `json:"order_id" form:"order_id"`
	ProductID  int64   `json:"product_id" form:"product_id"`
	BillNumber int64   `json:"bill_number" form:"bill_number"`
	Price      float64 `json:"price" form:"price"`
	Discount   float64 `json:"discount" form:"discount"`
	Total      float64 `json:"total" form:"total"`
}

func (p OrderDetailCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.OrderID, validation.Required, validation.Min(1)),
		validation.Field(&p.ProductID, validation.Required, validation.Min(1)),
		validation.Field(&p.BillNumber, validation.Required, validation.Min(1)),
		validation.Field(&p.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&p.Discount, validation.Min(0.0)),
		validation.Field(&p.Total, validation.Required, validation.Min(0.0)),
	)
}

func (p OrderDetailCreate) ToModel() *store.OrderDetail {
	return &store.OrderDetail{
		OrderID:    p.OrderID,
		ProductID:  p.ProductID,
		BillNumber: p.BillNumber,
		Price:      p.Price,
		Discount:   p.Discount,
		Total:      p.Total,
		IsActive:   true,
	}
}

type OrderDetailUpdate struct {
	Price    float64 `json:"price" form:"price"`
	Discount float64 `json:"discount" form:"discount"`
	Total    float64 `json:"total" form:"total"`
}

func (p OrderDetailUpdate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&p.Discount, validation.Min(0.0)),
		validation.Field(&p.Total, validation.Required, validation.Min(0.0)),
	)
}

func (p OrderDetailUpdate) Apply(record *store.OrderDetail) {
	record.Price = p.Price
	record.Discount = p.Discount
	record.Total = p.Total
}

type OrderDetailController = ResourceController[store.OrderDetail, OrderDetailCreate, OrderDetailUpdate]
