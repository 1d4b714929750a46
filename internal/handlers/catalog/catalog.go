package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/internal/dto"
	"github.com/GlebRadaev/serviceconnect/internal/service/catalogservice"
	"github.com/GlebRadaev/serviceconnect/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	ListServices(ctx context.Context, category string) ([]domain.ServiceListing, error)
	GetService(ctx context.Context, id int) (*domain.ServiceListing, error)
	Categories(ctx context.Context) ([]string, error)
}

type CatalogHandler struct {
	catalogService Service
	technicians    []string
}

func New(catalogService Service, technicians []string) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		technicians:    technicians,
	}
}

func toServiceDTO(l domain.ServiceListing) dto.ServiceResponseDTO {
	return dto.ServiceResponseDTO{
		ID:          l.ID,
		Name:        l.Name,
		Category:    l.Category,
		Price:       l.Price.StringFixed(2),
		Description: l.Description,
		Icon:        l.Icon,
	}
}

// Home godoc
//
//	@Summary		Landing page
//	@Description	Public landing content with a few featured services
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	dto.LandingResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/home [get]
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	listings, err := h.catalogService.ListServices(r.Context(), catalogservice.AllCategories)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	featured := make([]dto.ServiceResponseDTO, 0, 3)
	for _, l := range listings {
		if len(featured) == 3 {
			break
		}
		featured = append(featured, toServiceDTO(l))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LandingResponseDTO{
		Title:   "Service Connect",
		Tagline: "Book trusted home and tech services in a few clicks.",
		Features: []string{
			"Verified technicians",
			"Pay online or on delivery",
			"Track every order",
		},
		Featured: featured,
	})
}

// ListServices godoc
//
//	@Summary		List services
//	@Description	List catalog services, optionally filtered by category
//	@Tags			Catalog
//	@Produce		json
//	@Param			category	query	string	false	"Category name, All for no filter"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ServiceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/services [get]
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	listings, err := h.catalogService.ListServices(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.ServiceResponseDTO, 0, len(listings))
	for _, l := range listings {
		response = append(response, toServiceDTO(l))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Categories godoc
//
//	@Summary		List categories
//	@Tags			Catalog
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		string
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/services/categories [get]
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.Categories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// GetService godoc
//
//	@Summary		Get a service
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path	int	true	"Service id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ServiceResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid service id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Service not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/services/{id} [get]
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}
	listing, err := h.catalogService.GetService(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalogservice.ErrListingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toServiceDTO(*listing))
}

// Technicians godoc
//
//	@Summary		Suggested technicians
//	@Description	Labels offered on the booking form. Any non-empty label is accepted when booking.
//	@Tags			Catalog
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		string
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Router			/api/technicians [get]
func (h *CatalogHandler) Technicians(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.technicians)
}
