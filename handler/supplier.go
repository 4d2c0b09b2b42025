package handler

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/stockroom/store"
)

type SupplierCreate struct {
	Name         string `json:"name" form:"name"`
	Address      string `json:"address" form:"address"`
	Phone        string `json:"phone" form:"phone"`
	Fax          string `json:"fax" form:"fax"`
	Email        string `json:"email" form:"email"`
	OtherDetails string `json:"other_details" form:"other_details"`
}

func (p SupplierCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Phone, phoneNumber),
		validation.Field(&p.Email, validation.Required, emailAddress),
	)
}

func (p SupplierCreate) ToModel() *store.Supplier {
	return &store.Supplier{
		Name:         p.Name,
		Address:      p.Address,
		Phone:        p.Phone,
		Fax:          p.Fax,
		Email:        p.Email,
		OtherDetails: p.OtherDetails,
		IsActive:     true,
	}
}

type SupplierUpdate struct {
	Name         string `json:"name" form:"name"`
	Address      string `json:"address" form:"address"`
	Phone        string `json:"phone" form:"phone"`
	Fax          string `json:"fax" form:"fax"`
	Email        string `json:"email" form:"email"`
	OtherDetails string `json:"other_details" form:"other_details"`
}

func (p SupplierUpdate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Phone, phoneNumber),
		validation.Field(&p.Email, validation.Required, emailAddress),
	)
}

func (p SupplierUpdate) Apply(record *store.Supplier) {
	record.Name = p.Name
	record.Address = p.Address
	record.Phone = p.Phone
	record.Fax = p.Fax
	record.Email = p.Email
	record.OtherDetails = p.OtherDetails
}

type SupplierController = ResourceController[store.Supplier, SupplierCreate, SupplierUpdate]
