package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/serviceconnect/internal/access"
	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/internal/dto"
	"github.com/GlebRadaev/serviceconnect/internal/service/authservice"
	"github.com/GlebRadaev/serviceconnect/pkg/auth"
	"github.com/GlebRadaev/serviceconnect/pkg/utils"
)

type Service interface {
	GetProfile(ctx context.Context, email string) (*domain.Account, error)
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error
}

type ProfileHandler struct {
	authService Service
}

func New(authService Service) *ProfileHandler {
	return &ProfileHandler{
		authService: authService,
	}
}

// GetProfile godoc
//
//	@Summary		Own profile
//	@Tags			Profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	account, err := h.authService.GetProfile(r.Context(), caller.Email)
	if err != nil {
		if errors.Is(err, authservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		Email:     account.Email,
		Name:      account.DisplayName,
		Role:      string(account.Role),
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
	})
}

// ChangePassword godoc
//
//	@Summary		Change own password
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ChangePasswordRequestDTO	true	"Old and new password"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Invalid credentials"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile/password [put]
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.ChangePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		utils.RespondWithError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	err := h.authService.ChangePassword(r.Context(), caller.Email, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, authservice.ErrMissingFields):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Password changed"})
}

// Navigation godoc
//
//	@Summary		Navigation menu
//	@Description	Menu entries the caller's role is allowed to use
//	@Tags			Profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.NavigationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/navigation [get]
func (h *ProfileHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	menu := access.Navigation(caller.Role)
	items := make([]dto.MenuItemDTO, 0, len(menu))
	for _, item := range menu {
		items = append(items, dto.MenuItemDTO{Title: item.Title, Path: item.Path})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NavigationResponseDTO{
		Role:     string(caller.Role),
		HomePage: access.HomePage(caller.Role),
		Items:    items,
	})
}
