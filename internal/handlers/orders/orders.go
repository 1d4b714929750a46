package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/serviceconnect/internal/access"
	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/internal/dto"
	"github.com/GlebRadaev/serviceconnect/internal/service/catalogservice"
	"github.com/GlebRadaev/serviceconnect/internal/service/orderservice"
	"github.com/GlebRadaev/serviceconnect/pkg/auth"
	"github.com/GlebRadaev/serviceconnect/pkg/utils"
	"github.com/GlebRadaev/serviceconnect/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	CreateOrder(ctx context.Context, caller auth.Caller, req orderservice.BookingRequest) (*domain.Order, error)
	ListOrdersForClient(ctx context.Context, caller auth.Caller) ([]domain.Order, error)
	ListPendingOrders(ctx context.Context, caller auth.Caller) ([]domain.Order, error)
	CompleteOrder(ctx context.Context, caller auth.Caller, id string) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func toOrderDTO(o domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:            o.ID,
		ClientEmail:   o.ClientEmail,
		ClientName:    o.ClientName,
		ServiceID:     o.ServiceID,
		ServiceName:   o.ServiceName,
		Technician:    o.TechnicianLabel,
		RequestedDate: o.RequestedDate.Format(dto.DateLayout),
		Status:        string(o.Status),
		Paid:          o.Paid,
		PaymentMethod: o.PaymentMethod.Label(),
		Notes:         o.Notes,
		Price:         o.Price.StringFixed(2),
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}

func toOrderDTOs(orders []domain.Order) []dto.OrderResponseDTO {
	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderDTO(order))
	}
	return response
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, access.ErrForbidden), errors.Is(err, orderservice.ErrClientNotFound):
		utils.RespondWithError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, orderservice.ErrOrderNotFound), errors.Is(err, catalogservice.ErrListingNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidPaymentMethod),
		errors.Is(err, orderservice.ErrDateInPast),
		errors.Is(err, orderservice.ErrMissingTechnician):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateOrder godoc
//
//	@Summary		Book a service
//	@Description	Create a Pending order for the authenticated client. Card and wallet payments are marked paid.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Booking request"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid booking request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Service not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	date, ok := validate.ParseDate(dto.DateLayout, req.RequestedDate, time.Local)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid requested date")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), caller, orderservice.BookingRequest{
		ServiceID:       req.ServiceID,
		TechnicianLabel: req.Technician,
		RequestedDate:   date,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toOrderDTO(*order))
}

// GetOrders godoc
//
//	@Summary		Get own orders
//	@Description	Orders booked by the authenticated client, newest first
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.ListOrdersForClient(r.Context(), caller)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTOs(orders))
}

// GetPending godoc
//
//	@Summary		Pending orders
//	@Description	All Pending orders in booking order, for technicians
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/pending [get]
func (h *OrderHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.ListPendingOrders(r.Context(), caller)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTOs(orders))
}

// CompleteOrder godoc
//
//	@Summary		Complete an order
//	@Description	Mark an order Done. Completing an order that is already Done succeeds.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	string	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/complete [post]
func (h *OrderHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	order, err := h.orderService.CompleteOrder(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(*order))
}
