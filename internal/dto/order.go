package dto

// DateLayout is the wire format of requested_date.
const DateLayout = "2006-01-02"

type CreateOrderRequestDTO struct {
	ServiceID     int    `json:"service_id" example:"1"`
	Technician    string `json:"technician" example:"Alice (Top Rated)"`
	RequestedDate string `json:"requested_date" example:"2026-05-01"`
	PaymentMethod string `json:"payment_method" example:"Cash on Delivery"`
	Notes         string `json:"notes,omitempty" example:"Ring the bell twice"`
}

type OrderResponseDTO struct {
	ID            string `json:"id" example:"6f1c2c1e-2f43-4c36-9d2a-7d1f2a0b9c11"`
	ClientEmail   string `json:"client_email" example:"user@example.com"`
	ClientName    string `json:"client_name" example:"Demo User"`
	ServiceID     int    `json:"service_id" example:"1"`
	ServiceName   string `json:"service_name" example:"House Cleaning"`
	Technician    string `json:"technician" example:"Alice (Top Rated)"`
	RequestedDate string `json:"requested_date" example:"2026-05-01"`
	Status        string `json:"status" example:"Pending"`
	Paid          bool   `json:"paid" example:"false"`
	PaymentMethod string `json:"payment_method" example:"Cash on Delivery"`
	Notes         string `json:"notes,omitempty"`
	Price         string `json:"price" example:"50.00"`
	CreatedAt     string `json:"created_at" example:"2026-04-20T16:09:57+03:00"`
}
