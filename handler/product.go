package handler

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/stockroom/auth"
	"github.com/goliatone/stockroom/store"
)

type ProductCreate struct {
	Name         string  `json:"name" form:"name"`
	Description  string  `json:"description" form:"description"`
	Unit         int     `json:"unit" form:"unit"`
	OtherDetails string  `json:"other_details" form:"other_details"`
	Price        float64 `json:"price" form:"price"`
	CategoryID   int64   `json:"category_id" form:"category_id"`
	SupplierID   int64   `json:"supplier_id" form:"supplier_id"`
}

func (p ProductCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&p.Unit, validation.Min(0)),
		validation.Field(&p.CategoryID, validation.Required, validation.Min(1)),
		validation.Field(&p.SupplierID, validation.Required, validation.Min(1)),
	)
}

func (p ProductCreate) toModel() *store.Product {
	return &store.Product{
		Name:         p.Name,
		Description:  p.Description,
		Unit:         p.Unit,
		OtherDetails: p.OtherDetails,
		Price:        p.Price,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
	}
}

type ProductUpdate struct {
	Name         string  `json:"name" form:"name"`
	Description  string  `json:"description" form:"description"`
	Unit         int     `json:"unit" form:"unit"`
	OtherDetails string  `json:"other_details" form:"other_details"`
	Price        float64 `json:"price" form:"price"`
	CategoryID   int64   `json:"category_id" form:"category_id"`
	SupplierID   int64   `json:"supplier_id" form:"supplier_id"`
}

func (p ProductUpdate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&p.Unit, validation.Min(0)),
		validation.Field(&p.CategoryID, validation.Required, validation.Min(1)),
		validation.Field(&p.SupplierID, validation.Required, validation.Min(1)),
	)
}

func (p ProductUpdate) apply(record *store.Product) {
	record.Name = p.Name
	record.Description = p.Description
	record.Unit = p.Unit
	record.OtherDetails = p.OtherDetails
	record.Price = p.Price
	record.CategoryID = p.CategoryID
	record.SupplierID = p.SupplierID
}

// ProductController is its own controller because products flip between
// Available and Unavailable instead of carrying the is_active flag.
type ProductController struct {
	products *store.ProductRepository
	logger   auth.Logger
}

func NewProductController(products *store.ProductRepository, logger auth.Logger) *ProductController {
	return &ProductController{
		products: products,
		logger:   logger,
	}
}

func (ctrl *ProductController) RegisterRoutes(router fiber.Router, protect fiber.Handler) {
	router.Get("/", ctrl.ListAvailable)
	router.Get("/unavailable", protect, ctrl.ListUnavailable)
	router.Get("/:id", ctrl.Show)
	router.Post("/", protect, ctrl.Create)
	router.Put("/:id", protect, ctrl.Update)
	router.Delete("/:id", protect, ctrl.Retire)
	router.Put("/:id/reactivate", protect, ctrl.Restock)
}

func (ctrl *ProductController) Create(c *fiber.Ctx) error {
	payload := ProductCreate{}
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return respondValidation(c, err)
	}

	record, err := ctrl.products.Create(c.UserContext(), payload.toModel())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (ctrl *ProductController) ListAvailable(c *fiber.Ctx) error {
	records, err := ctrl.products.ListByStatus(c.UserContext(), store.ProductAvailable)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (ctrl *ProductController) ListUnavailable(c *fiber.Ctx) error {
	records, err := ctrl.products.ListByStatus(c.UserContext(), store.ProductUnavailable)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (ctrl *ProductController) Show(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := ctrl.products.ByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(record)
}

func (ctrl *ProductController) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := ctrl.products.ByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	payload := ProductUpdate{}
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return respondValidation(c, err)
	}

	payload.apply(record)

	record, err = ctrl.products.Update(c.UserContext(), record)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(record)
}

// Retire flips an available product to Unavailable.
func (ctrl *ProductController) Retire(c *fiber.Ctx) error {
	return ctrl.flipStatus(c, store.ProductAvailable, store.ProductUnavailable)
}

// Restock flips an unavailable product back to Available.
func (ctrl *ProductController) Restock(c *fiber.Ctx) error {
	return ctrl.flipStatus(c, store.ProductUnavailable, store.ProductAvailable)
}

func (ctrl *ProductController) flipStatus(c *fiber.Ctx, from, to store.ProductStatus) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := ctrl.products.SetStatus(c.UserContext(), id, from, to)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(record)
}
