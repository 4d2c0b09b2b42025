package handler

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/stockroom/auth"
	"github.com/goliatone/stockroom/store"
)

type StaffCreate struct {
	FirstName string `json:"firstname" form:"firstname"`
	LastName  string `json:"lastname" form:"lastname"`
	Username  string `json:"username" form:"username"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
	Address   string `json:"address" form:"address"`
	Phone     string `json:"phone" form:"phone"`
	RoleID    int64  `json:"role_id" form:"role_id"`
}

func (p StaffCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&p.Email, validation.Required, emailAddress),
		validation.Field(&p.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&p.Phone, phoneNumber),
		validation.Field(&p.RoleID, validation.Required, validation.Min(1)),
	)
}

type StaffUpdate struct {
	FirstName string `json:"firstname" form:"firstname"`
	LastName  string `json:"lastname" form:"lastname"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
	Address   string `json:"address" form:"address"`
	Phone     string `json:"phone" form:"phone"`
	RoleID    int64  `json:"role_id" form:"role_id"`
}

func (p StaffUpdate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Email, validation.Required, emailAddress),
		validation.Field(&p.Password, validation.Length(8, 72)),
		validation.Field(&p.Phone, phoneNumber),
		validation.Field(&p.RoleID, validation.Required, validation.Min(1)),
	)
}

// StaffController manages staff principals. Registration hashes the password
// before anything touches the database, and the username is immutable once
// it has been minted into tokens.
type StaffController struct {
	staff  *store.StaffRepository
	hasher auth.PasswordAuthenticator
	logger auth.Logger
}

func NewStaffController(staff *store.StaffRepository, hasher auth.PasswordAuthenticator, logger auth.Logger) *StaffController {
	return &StaffController{
		staff:  staff,
		hasher: hasher,
		logger: logger,
	}
}

// RegisterRoutes mounts the staff endpoints. The surface is protected except
// that the register guard may admit the very first principal on a fresh
// install.
func (ctrl *StaffController) RegisterRoutes(router fiber.Router, protect, register fiber.Handler) {
	router.Get("/", protect, ctrl.ListActive)
	router.Get("/inactive", protect, ctrl.ListInactive)
	router.Get("/:id", protect, ctrl.Show)
	router.Post("/", register, ctrl.Register)
	router.Post("/register", register, ctrl.Register)
	router.Put("/:id", protect, ctrl.Update)
	router.Delete("/:id", protect, ctrl.Deactivate)
	router.Put("/:id/reactivate", protect, ctrl.Reactivate)
}

func (ctrl *StaffController) Register(c *fiber.Ctx) error {
	payload := StaffCreate{}
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return respondValidation(c, err)
	}

	hash, err := ctrl.hasher.HashPassword(payload.Password)
	if err != nil {
		return respondError(c, err)
	}

	record, err := ctrl.staff.Register(c.UserContext(), &store.Staff{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Username:     payload.Username,
		Email:        payload.Email,
		PasswordHash: hash,
		Address:      payload.Address,
		Phone:        payload.Phone,
		RoleID:       payload.RoleID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (ctrl *StaffController) ListActive(c *fiber.Ctx) error {
	records, err := ctrl.staff.List(c.UserContext(), true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (ctrl *StaffController) ListInactive(c *fiber.Ctx) error {
	records, err := ctrl.staff.List(c.UserContext(), false)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (ctrl *StaffController) Show(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := ctrl.staff.ByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(record)
}

func (ctrl *StaffController) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := ctrl.staff.ByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	payload := StaffUpdate{}
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid request body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return respondValidation(c, err)
	}

	record.FirstName = payload.FirstName
	record.LastName = payload.LastName
	record.Email = payload.Email
	record.Address = payload.Address
	record.Phone = payload.Phone
	record.RoleID = payload.RoleID

	if payload.Password != "" {
		hash, err := ctrl.hasher.HashPassword(payload.Password)
		if err != nil {
			return respondError(c, err)
		}
		record.PasswordHash = hash
	}

	record, err = ctrl.staff.Update(c.UserContext(), record)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(record)
}

func (ctrl *StaffController) Deactivate(c *fiber.Ctx) error {
	return ctrl.setActive(c, false)
}

func (ctrl *StaffController) Reactivate(c *fiber.Ctx) error {
	return ctrl.setActive(c, true)
}

func (ctrl *StaffController) setActive(c *fiber.Ctx, active bool) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := ctrl.staff.SetActive(c.UserContext(), id, active)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(record)
}
