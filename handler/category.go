package handler

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/stockroom/store"
)

type CategoryCreate struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func (p CategoryCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Description, validation.Length(0, 255)),
	)
}

func (p CategoryCreate) ToModel() *store.Category {
	return &store.Category{
		Name:        p.Name,
		Description: p.Description,
		IsActive:    true,
	}
}

type CategoryUpdate struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func (p CategoryUpdate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Description, validation.Length(0, 255)),
	)
}

func (p CategoryUpdate) Apply(record *store.Category) {
	record.Name = p.Name
	record.Description = p.Description
}

// CategoryController is the plain CRUD surface for categories.
type CategoryController = ResourceController[store.Category, CategoryCreate, CategoryUpdate]
