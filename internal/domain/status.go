package domain

import (
	"errors"
	"strings"
)

type OrderStatus string

const (
	// OrderStatusPending заказ создан клиентом и ждёт исполнителя.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusDone заказ выполнен техником.
	OrderStatusDone OrderStatus = "Done"
)

// CanTransitionTo reports whether an order in status s may move to next.
// Done -> Done is allowed so that repeated completion is a no-op.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusPending || next == OrderStatusDone
	case OrderStatusDone:
		return next == OrderStatusDone
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentWallet PaymentMethod = "wallet"
	PaymentCash   PaymentMethod = "cash"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

var paymentLabels = map[string]PaymentMethod{
	"card":                 PaymentCard,
	"wallet":               PaymentWallet,
	"cash":                 PaymentCash,
	"credit card (online)": PaymentCard,
	"digital wallet":       PaymentWallet,
	"cash on delivery":     PaymentCash,
}

// ParsePaymentMethod accepts both the enum values and the labels shown on the
// booking form.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m, ok := paymentLabels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}

func (m PaymentMethod) IsPrepaid() bool {
	switch m {
	case PaymentCard, PaymentWallet:
		return true
	default:
		return false
	}
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCard:
		return "Credit Card (Online)"
	case PaymentWallet:
		return "Digital Wallet"
	case PaymentCash:
		return "Cash on Delivery"
	default:
		return string(m)
	}
}
