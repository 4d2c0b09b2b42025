package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/stockroom/auth"
	"github.com/goliatone/stockroom/store"
)

// CreatePayload validates incoming bodies and builds a fresh record.
type CreatePayload[T any] interface {
	Validate() error
	ToModel() *T
}

// UpdatePayload validates incoming bodies and applies the changed fields to
// an existing record.
type UpdatePayload[T any] interface {
	Validate() error
	Apply(record *T)
}

// ResourceController implements the CRUD surface every cataloged entity
// shares: create, list active, list inactive, show, update, deactivate,
// reactivate. Reads are public, writes require a bearer token.
type ResourceController[T any, C CreatePayload[T], U UpdatePayload[T]] struct {
	repo   *store.Repository[T]
	logger auth.Logger
}

func NewResourceController[T any, C CreatePayload[T], U UpdatePayload[T]](repo *store.Repository[T], logger auth.Logger) *ResourceController[T, C, U] {
	return &ResourceController[T, C, U]{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes mounts the CRUD endpoints. The protect handler guards every
// mutation plus the inactive listing.
func (ctrl *ResourceController[T, C, U]) RegisterRoutes(router fiber.Router, protect fiber.Handler) {
	router.Get("/", ctrl.ListActive)
	router.Get("/inactive", protect, ctrl.ListInactive)
	router.Get("/:id", ctrl.Show)
	router.Post("/", protect, ctrl.Create)
	router.Put("/:id", protect, ctrl.Update)
	router.Delete("/:id", protect, ctrl.Deactivate)
	router.Put("/:id/reactivate", protect, ctrl.Reactivate)
}

func (ctrl *ResourceController[T, C, U]) Create(c *fiber.Ctx) error {
	var payload C
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return respondValidation(c, err)
	}

	record, err := ctrl.repo.Create(c.UserContext(), payload.ToModel())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (ctrl *ResourceController[T, C, U]) ListActive(c *fiber.Ctx) error {
	records, err := ctrl.repo.List(c.UserContext(), true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (ctrl *ResourceController[T, C, U]) ListInactive(c *fiber.Ctx) error {
	records, err := ctrl.repo.List(c.UserContext(), false)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (ctrl *ResourceController[T, C, U]) Show(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := ctrl.repo.ByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(record)
}

func (ctrl *ResourceController[T, C, U]) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := ctrl.repo.ByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	var payload U
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return respondValidation(c, err)
	}

	payload.Apply(record)

	record, err = ctrl.repo.Update(c.UserContext(), record)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(record)
}

func (ctrl *ResourceController[T, C, U]) Deactivate(c *fiber.Ctx) error {
	return ctrl.setActive(c, false)
}

func (ctrl *ResourceController[T, C, U]) Reactivate(c *fiber.Ctx) error {
	return ctrl.setActive(c, true)
}

func (ctrl *ResourceController[T, C, U]) setActive(c *fiber.Ctx, active bool) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := ctrl.repo.SetActive(c.UserContext(), id, active)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(record)
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, goerrors.New("id must be an integer", goerrors.CategoryBadInput).
			WithCode(goerrors.CodeBadRequest)
	}
	return id, nil
}
