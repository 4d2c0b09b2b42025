package handler

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/stockroom/auth"
	"github.com/goliatone/stockroom/store"
)

type RoleCreate struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func (p RoleCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Description, validation.Length(0, 255)),
	)
}

func (p RoleCreate) ToModel() *store.Role {
	return &store.Role{
		Name:        p.Name,
		Description: p.Description,
		IsActive:    true,
	}
}

type RoleUpdate struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func (p RoleUpdate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Description, validation.Length(0, 255)),
	)
}

func (p RoleUpdate) Apply(record *store.Role) {
	record.Name = p.Name
	record.Description = p.Description
}

// RoleController extends the shared CRUD surface with a listing that carries
// the number of active staff per role.
type RoleController struct {
	*ResourceController[store.Role, RoleCreate, RoleUpdate]
	roles *store.RoleRepository
}

func NewRoleController(roles *store.RoleRepository, repo *store.Repository[store.Role], logger auth.Logger) *RoleController {
	return &RoleController{
		ResourceController: NewResourceController[store.Role, RoleCreate, RoleUpdate](repo, logger),
		roles:              roles,
	}
}

func (ctrl *RoleController) RegisterRoutes(router fiber.Router, protect fiber.Handler) {
	router.Get("/", ctrl.ListActive)
	router.Get("/inactive", protect, ctrl.ListInactive)
	router.Get("/:id", ctrl.Show)
	router.Post("/", protect, ctrl.Create)
	router.Put("/:id", protect, ctrl.Update)
	router.Delete("/:id", protect, ctrl.Deactivate)
	router.Put("/:id/reactivate", protect, ctrl.Reactivate)
}

// ListActive overrides the shared listing to include staff counts.
func (ctrl *RoleController) ListActive(c *fiber.Ctx) error {
	records, err := ctrl.roles.ListWithStaffCount(c.UserContext(), true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}
