package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/serviceconnect/internal/access"
	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/internal/dto"
	"github.com/GlebRadaev/serviceconnect/internal/service/authservice"
	"github.com/GlebRadaev/serviceconnect/pkg/utils"
	"github.com/GlebRadaev/serviceconnect/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, email, password, name string, role domain.Role) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string, roleHint domain.Role) (*domain.Account, error)
	GenerateToken(account *domain.Account) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func parseRole(s string) domain.Role {
	return domain.Role(strings.ToLower(strings.TrimSpace(s)))
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create a client or technician account and receive a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsEmail(req.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email")
		return
	}
	if req.Password != req.ConfirmPassword {
		utils.RespondWithError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	account, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name, parseRole(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrDuplicateEmail):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, authservice.ErrInvalidRole), errors.Is(err, authservice.ErrMissingFields):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.authService.GenerateToken(account)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message:  "Account successfully registered",
		HomePage: access.HomePage(account.Role),
	})
}

// Login godoc
//
//	@Summary		Authenticate an account
//	@Description	Log in with email and password and get a JWT token. The optional role restricts which account type may log in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account, err := h.authService.Authenticate(r.Context(), req.Email, req.Password, parseRole(req.Role))
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(account)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message:  "Account successfully authenticated",
		Role:     string(account.Role),
		HomePage: access.HomePage(account.Role),
	})
}
