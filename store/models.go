package store

import (
	"time"

	"github.com/uptrace/bun"
)

// ProductStatus is the availability state of a product. Products are the one
// resource that carries a status string instead of the is_active flag.
type ProductStatus = string

const (
	ProductAvailable   ProductStatus = "Available"
	ProductUnavailable ProductStatus = "Unavailable"
)

// Staff is the principal: the only entity that can obtain a token. The
// password is stored hashed, never in plaintext, and rows are deactivated
// rather than deleted.
type Staff struct {
	bun.BaseModel  `bun:"table:staff,alias:stf"`
	ID             int64      `bun:"id,pk,autoincrement" json:"id"`
	FirstName      string     `bun:"first_name,notnull" json:"firstname"`
	LastName       string     `bun:"last_name,notnull" json:"lastname"`
	Username       string     `bun:"username,notnull,unique" json:"username"`
	Email          string     `bun:"email,notnull,unique" json:"email"`
	PasswordHash   string     `bun:"password_hash,notnull" json:"-"`
	Address        string     `bun:"address" json:"address"`
	Phone          string     `bun:"phone" json:"phone"`
	RoleID         int64      `bun:"role_id" json:"role_id"`
	Role           *Role      `bun:"rel:belongs-to,join:role_id=id" json:"role,omitempty"`
	IsActive       bool       `bun:"is_active,notnull" json:"is_active"`
	LoginAttempts  int        `bun:"login_attempts,notnull,default:0" json:"-"`
	LoginAttemptAt *time.Time `bun:"login_attempt_at" json:"-"`
	LoggedInAt     *time.Time `bun:"loggedin_at" json:"-"`
}

type Role struct {
	bun.BaseModel `bun:"table:roles,alias:rl"`
	ID            int64  `bun:"id,pk,autoincrement" json:"id"`
	Name          string `bun:"name,notnull,unique" json:"name"`
	Description   string `bun:"description" json:"description"`
	IsActive      bool   `bun:"is_active,notnull" json:"is_active"`
	StaffCount    int64  `bun:"staff_count,scanonly" json:"staff_count,omitempty"`
}

type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`
	ID            int64  `bun:"id,pk,autoincrement" json:"id"`
	Name          string `bun:"name,notnull,unique" json:"name"`
	Description   string `bun:"description" json:"description"`
	IsActive      bool   `bun:"is_active,notnull" json:"is_active"`
}

// Payment is keyed by bill number rather than a surrogate id.
type Payment struct {
	bun.BaseModel `bun:"table:payments,alias:pay"`
	BillNumber    int64  `bun:"bill_number,pk" json:"bill_number"`
	PaymentType   string `bun:"payment_type,notnull" json:"payment_type"`
	OtherDetails  string `bun:"other_details" json:"other_details"`
	IsActive      bool   `bun:"is_active,notnull" json:"is_active"`
}

type Supplier struct {
	bun.BaseModel `bun:"table:suppliers,alias:sup"`
	ID            int64  `bun:"id,pk,autoincrement" json:"id"`
	Name          string `bun:"name,notnull" json:"name"`
	Address       string `bun:"address" json:"address"`
	Phone         string `bun:"phone" json:"phone"`
	Fax           string `bun:"fax,unique" json:"fax"`
	Email         string `bun:"email,unique" json:"email"`
	OtherDetails  string `bun:"other_details" json:"other_details"`
	IsActive      bool   `bun:"is_active,notnull" json:"is_active"`
}

// Customer is the original schema's "users" table: the people placing
// orders, distinct from staff principals.
type Customer struct {
	bun.BaseModel `bun:"table:customers,alias:cus"`
	ID            int64  `bun:"id,pk,autoincrement" json:"id"`
	FirstName     string `bun:"first_name,notnull" json:"firstname"`
	LastName      string `bun:"last_name,notnull" json:"lastname"`
	Email         string `bun:"email,notnull,unique" json:"email"`
	Phone         string `bun:"phone" json:"phone"`
	StaffID       *int64 `bun:"staff_id" json:"staff_id,omitempty"`
	IsActive      bool   `bun:"is_active,notnull" json:"is_active"`
}

type Product struct {
	bun.BaseModel `bun:"table:products,alias:prd"`
	ID            int64         `bun:"id,pk,autoincrement" json:"id"`
	Name          string        `bun:"name,notnull" json:"name"`
	Description   string        `bun:"description" json:"description"`
	Unit          int           `bun:"unit" json:"unit"`
	OtherDetails  string        `bun:"other_details" json:"other_details"`
	Price         float64       `bun:"price,notnull" json:"price"`
	CategoryID    int64         `bun:"category_id" json:"category_id"`
	Category      *Category     `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
	SupplierID    int64         `bun:"supplier_id" json:"supplier_id"`
	Supplier      *Supplier     `bun:"rel:belongs-to,join:supplier_id=id" json:"supplier,omitempty"`
	Status        ProductStatus `bun:"status,notnull,default:'Available'" json:"status"`
}

type Order struct {
	bun.BaseModel `bun:"table:orders,alias:ord"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	CustomerID    int64     `bun:"customer_id" json:"customer_id"`
	Customer      *Customer `bun:"rel:belongs-to,join:customer_id=id" json:"customer,omitempty"`
	Detail        string    `bun:"detail" json:"detail"`
	OrderDate     time.Time `bun:"order_date,nullzero,default:current_timestamp" json:"order_date"`
	IsActive      bool      `bun:"is_active,notnull" json:"is_active"`
}

type OrderDetail struct {
	bun.BaseModel `bun:"table:order_details,alias:odt"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	OrderID       int64     `bun:"order_id,notnull" json:"order_id"`
	Order         *Order    `bun:"rel:belongs-to,join:order_id=id" json:"order,omitempty"`
	ProductID     int64     `bun:"product_id,notnull" json:"product_id"`
	Product       *Product  `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
	BillNumber    int64     `bun:"bill_number" json:"bill_number"`
	Payment       *Payment  `bun:"rel:belongs-to,join:bill_number=bill_number" json:"payment,omitempty"`
	Price         float64   `bun:"price,notnull" json:"price"`
	Discount      float64   `bun:"discount" json:"discount"`
	Total         float64   `bun:"total,notnull" json:"total"`
	Date          time.Time `bun:"date,nullzero,default:current_timestamp" json:"date"`
	IsActive      bool      `bun:"is_active,notnull" json:"is_active"`
}
