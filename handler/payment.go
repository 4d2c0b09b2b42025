package handler

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/stockroom/store"
)

type PaymentCreate struct {
	BillNumber   int64  `json:"bill_number" form:"bill_number"`
	PaymentType  string `json:"payment_type" form:"payment_type"`
	OtherDetails string `json:"other_details" form:"other_details"`
}

func (p PaymentCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.BillNumber, validation.Required, validation.Min(1)),
		validation.Field(&p.PaymentType, validation.Required, validation.Length(1, 50)),
	)
}

func (p PaymentCreate) ToModel() *store.Payment {
	return &store.Payment{
		BillNumber:   p.BillNumber,
		PaymentType:  p.PaymentType,
		OtherDetails: p.OtherDetails,
		IsActive:     true,
	}
}

type PaymentUpdate struct {
	PaymentType  string `json:"payment_type" form:"payment_type"`
	OtherDetails string `json:"other_details" form:"other_details"`
}

func (p PaymentUpdate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.PaymentType, validation.Required, validation.Length(1, 50)),
	)
}

func (p PaymentUpdate) Apply(record *store.Payment) {
	record.PaymentType = p.PaymentType
	record.OtherDetails = p.OtherDetails
}

// PaymentController uses the bill number as the resource id.
type PaymentController = ResourceController[store.Payment, PaymentCreate, PaymentUpdate]
