package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleGuest      Role = ""
	RoleClient     Role = "client"
	RoleTechnician Role = "technician"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleTechnician
}

type Account struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type ServiceListing struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
}

type Order struct {
	ID              string          `db:"id"`
	ClientEmail     string          `db:"client_email"`
	ClientName      string          `db:"client_name"`
	ServiceID       int             `db:"service_id"`
	ServiceName     string          `db:"service_name"`
	TechnicianLabel string          `db:"technician_label"`
	RequestedDate   time.Time       `db:"requested_date"`
	Status          OrderStatus     `db:"status"`
	Paid            bool            `db:"paid"`
	PaymentMethod   PaymentMethod   `db:"payment_method"`
	Notes           string          `db:"notes"`
	Price           decimal.Decimal `db:"price_cents"`
	CreatedAt       time.Time       `db:"created_at"`
}
