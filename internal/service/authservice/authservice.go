package authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/pkg/auth"
	"github.com/GlebRadaev/serviceconnect/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
}

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrMissingFields      = errors.New("email, password, name and role are required")
	ErrAccountNotFound    = errors.New("account not found")
)

// rolePrecedence is the order in which roles are tried when login carries no
// role hint.
var rolePrecedence = []domain.Role{domain.RoleClient, domain.RoleTechnician}

type Service struct {
	accountRepo Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		accountRepo: repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, email, password, name string, role domain.Role) (*domain.Account, error) {
	if strings.TrimSpace(email) == "" || password == "" || strings.TrimSpace(name) == "" || role == domain.RoleGuest {
		return nil, ErrMissingFields
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("account already exists", zap.String("email", email))
		return nil, ErrDuplicateEmail
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	account := &domain.Account{
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  name,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	created, err := s.accountRepo.Create(ctx, account)
	if errors.Is(err, domain.ErrAlreadyExists) {
		// lost a race with a concurrent registration
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		zap.L().Error("can't create account: ", zap.Error(err))
		return nil, err
	}

	metrics.Registrations.WithLabelValues(string(role)).Inc()
	zap.L().Info("account successfully registered", zap.String("email", email), zap.String("role", string(role)))
	return created, nil
}

// Authenticate returns the account matching email and password. An empty
// roleHint accepts any role; otherwise the account must hold that role.
func (s *Service) Authenticate(ctx context.Context, email, password string, roleHint domain.Role) (*domain.Account, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil || account == nil {
		zap.L().Info("invalid credentials", zap.String("email", email), zap.Error(err))
		metrics.LoginFailures.Inc()
		return nil, ErrInvalidCredentials
	}

	roles := rolePrecedence
	if roleHint != domain.RoleGuest {
		roles = []domain.Role{roleHint}
	}
	for _, role := range roles {
		if account.Role != role {
			continue
		}
		if !s.hashService.ComparePassword(account.PasswordHash, password) {
			break
		}
		zap.L().Info("account successfully authenticated", zap.String("email", email))
		return account, nil
	}

	zap.L().Info("invalid credentials", zap.String("email", email))
	metrics.LoginFailures.Inc()
	return nil, ErrInvalidCredentials
}

func (s *Service) GenerateToken(account *domain.Account) (string, error) {
	var expirationTime time.Time
	if s.tokenTTL > 0 {
		expirationTime = time.Now().Add(s.tokenTTL)
	}

	token, err := s.jwtService.GenerateJWT(auth.Caller{Email: account.Email, Role: account.Role}, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetProfile(ctx context.Context, email string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if newPassword == "" {
		return ErrMissingFields
	}
	account, err := s.GetProfile(ctx, email)
	if err != nil {
		return err
	}
	if !s.hashService.ComparePassword(account.PasswordHash, oldPassword) {
		return ErrInvalidCredentials
	}
	hashedPassword, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return err
	}
	if err = s.accountRepo.UpdatePasswordHash(ctx, email, hashedPassword); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		zap.L().Error("can't update password: ", zap.Error(err))
		return err
	}
	zap.L().Info("password changed", zap.String("email", email))
	return nil
}

type DemoAccount struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{Email: "user@example.com", Password: "user", Name: "Demo User", Role: domain.RoleClient},
		{Email: "tech@example.com", Password: "tech", Name: "Demo Tech", Role: domain.RoleTechnician},
	}
}

// SeedDemoAccounts registers the demo accounts. Accounts that already exist
// are left as they are.
func (s *Service) SeedDemoAccounts(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, demo := range DemoAccounts() {
		demo := demo
		g.Go(func() error {
			_, err := s.Register(ctx, demo.Email, demo.Password, demo.Name, demo.Role)
			if err != nil && !errors.Is(err, ErrDuplicateEmail) {
				return fmt.Errorf("seed %s: %w", demo.Email, err)
			}
			return nil
		})
	}
	return g.Wait()
}
