package handler

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/stockroom/store"
)

type OrderCreate struct {
	CustomerID int64  `json:"customer_id" form:"customer_id"`
	Detail     string `json:"detail" form:"detail"`
}

func (p OrderCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.CustomerID, validation.Required, validation.Min(1)),
		validation.Field(&p.Detail, validation.Length(0, 255)),
	)
}

func (p OrderCreate) ToModel() *store.Order {
	return &store.Order{
		CustomerID: p.CustomerID,
		Detail:     p.Detail,
		IsActive:   true,
	}
}

type OrderUpdate struct {
	CustomerID int64  `json:"customer_id" form:"customer_id"`
	Detail     string `json:"detail" form:"detail"`
}

func (p OrderUpdate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.CustomerID, validation.Required, validation.Min(1)),
		validation.Field(&p.Detail, validation.Length(0, 255)),
	)
}

func (p OrderUpdate) Apply(record *store.Order) {
	record.CustomerID = p.CustomerID
	record.Detail = p.Detail
}

type OrderController = ResourceController[store.Order, OrderCreate, OrderUpdate]
