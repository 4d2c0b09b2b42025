package handler

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/stockroom/store"
)

type CustomerCreate struct {
	FirstName string `json:"firstname" form:"firstname"`
	LastName  string `json:"lastname" form:"lastname"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"phone" form:"phone"`
	StaffID   *int64 `json:"staff_id" form:"staff_id"`
}

func (p CustomerCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Email, validation.Required, emailAddress),
		validation.Field(&p.Phone, phoneNumber),
	)
}

func (p CustomerCreate) ToModel() *store.Customer {
	return &store.Customer{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		StaffID:   p.StaffID,
		IsActive:  true,
	}
}

type CustomerUpdate struct {
	FirstName string `json:"firstname" form:"firstname"`
	LastName  string `json:"lastname" form:"lastname"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"phone" form:"phone"`
	StaffID   *int64 `json:"staff_id" form:"staff_id"`
}

func (p CustomerUpdate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Email, validation.Required, emailAddress),
		validation.Field(&p.Phone, phoneNumber),
	)
}

func (p CustomerUpdate) Apply(record *store.Customer) {
	record.FirstName = p.FirstName
	record.LastName = p.LastName
	record.Email = p.Email
	record.Phone = p.Phone
	if p.StaffID != nil {
		record.StaffID = p.StaffID
	}
}

type CustomerController = ResourceController[store.Customer, CustomerCreate, CustomerUpdate]
