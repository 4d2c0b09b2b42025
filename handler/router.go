package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/stockroom/auth"
	"github.com/goliatone/stockroom/store"
	"github.com/uptrace/bun"
)

// App bundles everything the HTTP layer needs.
type App struct {
	DB       *bun.DB
	Auther   auth.Authenticator
	Staff    *store.StaffRepository
	HashCost int
	Logger   auth.Logger
}

// RegisterRoutes mounts the full API surface on the fiber app.
func (a App) RegisterRoutes(app *fiber.App) {
	if a.Logger == nil {
		a.Logger = auth.DefaultLogger()
	}

	protect := auth.Protected(auth.MiddlewareConfig{
		Authenticator: a.Auther,
	})

	// registration skips auth only while the staff table is empty
	register := auth.Protected(auth.MiddlewareConfig{
		Authenticator: a.Auther,
		Filter: func(c *fiber.Ctx) bool {
			empty, err := a.Staff.Empty(c.UserContext())
			return err == nil && empty
		},
	})

	NewAuthController(a.Auther, a.Logger).
		RegisterRoutes(app.Group("/auth"))

	NewStaffController(a.Staff, auth.BcryptHasher{Cost: a.HashCost}, a.Logger).
		RegisterRoutes(app.Group("/staff"), protect, register)

	categories := store.NewRepository[store.Category](a.DB, "category")
	NewResourceController[store.Category, CategoryCreate, CategoryUpdate](categories, a.Logger).
		RegisterRoutes(app.Group("/categories"), protect)

	roles := store.NewRepository[store.Role](a.DB, "role")
	NewRoleController(store.NewRoleRepository(roles), roles, a.Logger).
		RegisterRoutes(app.Group("/roles"), protect)

	payments := store.NewRepository[store.Payment](a.DB, "payment",
		store.WithIDColumn[store.Payment]("bill_number"))
	NewResourceController[store.Payment, PaymentCreate, PaymentUpdate](payments, a.Logger).
		RegisterRoutes(app.Group("/payments"), protect)

	suppliers := store.NewRepository[store.Supplier](a.DB, "supplier")
	NewResourceController[store.Supplier, SupplierCreate, SupplierUpdate](suppliers, a.Logger).
		RegisterRoutes(app.Group("/suppliers"), protect)

	customers := store.NewRepository[store.Customer](a.DB, "customer")
	NewResourceController[store.Customer, CustomerCreate, CustomerUpdate](customers, a.Logger).
		RegisterRoutes(app.Group("/customers"), protect)

	products := store.NewProductRepository(store.NewRepository[store.Product](a.DB, "product",
		store.WithRelations[store.Product]("Category", "Supplier")))
	NewProductController(products, a.Logger).
		RegisterRoutes(app.Group("/products"), protect)

	orders := store.NewRepository[store.Order](a.DB, "order",
		store.WithRelations[store.Order]("Customer"))
	NewResourceController[store.Order, OrderCreate, OrderUpdate](orders, a.Logger).
		RegisterRoutes(app.Group("/orders"), protect)

	details := store.NewRepository[store.OrderDetail](a.DB, "order detail",
		store.WithRelations[store.OrderDetail]("Order", "Product", "Payment"))
	NewResourceController[store.OrderDetail, OrderDetailCreate, OrderDetailUpdate](details, a.Logger).
		RegisterRoutes(app.Group("/orderdetails"), protect)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
