package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
	"github.com/elinacho/lumiskin-backend/internal/app/repository"
	"github.com/elinacho/lumiskin-backend/pkg/logger"
	"github.com/elinacho/lumiskin-backend/pkg/redis"
	"github.com/elinacho/lumiskin-backend/pkg/util"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService is the mock authentication layer. Users live in memory, there
// is no real backend, but passwords are still hashed and sessions are still
// signed tokens so the HTTP surface behaves like the real thing.
type AuthService interface {
	Signup(email, password, firstName, lastName string) (*model.User, string, error)
	Login(email, password string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
	GetUserByID(id string) (*model.User, error)
	GetOrders(userID string) ([]model.Order, error)
	ExportOrders(userID string) (*excelize.File, error)
}

type authService struct {
	userRepo    repository.UserRepository
	secret      string
	tokenExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, secret string, tokenExpiry time.Duration) AuthService {
	return &authService{
		userRepo:    userRepo,
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// Signup creates a new mock user. A duplicate email fails and leaves any
// existing session untouched.
func (s *authService) Signup(email, password, firstName, lastName string) (*model.User, string, error) {
	logger.Info("Attempting signup", map[string]interface{}{
		"email": email,
	})

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		logger.Warn("Signup failed: email already exists", map[string]interface{}{
			"email": email,
		})
		return nil, "", ErrEmailAlreadyExists
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    firstName,
		LastName:     lastName,
		DateJoined:   time.Now(),
		Orders:       []model.Order{},
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailAlreadyExists
		}
		logger.Error("Failed to create user", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}

	token, err := util.GenerateSessionToken(user.ID, user.Email, s.secret, s.tokenExpiry)
	if err != nil {
		logger.Error("Failed to generate session token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, "", err
	}

	logger.Info("User signed up successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
	})
	return user, token, nil
}

func (s *authService) Login(email, password string) (*model.User, string, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		logger.Warn("Login failed: unknown email", map[string]interface{}{
			"email": email,
		})
		return nil, "", ErrInvalidCredentials
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: wrong password", map[string]interface{}{
			"email": email,
		})
		return nil, "", ErrInvalidCredentials
	}

	token, err := util.GenerateSessionToken(user.ID, user.Email, s.secret, s.tokenExpiry)
	if err != nil {
		logger.Error("Failed to generate session token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, "", err
	}

	logger.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
		"insider": user.IsInsider,
	})
	return user, token, nil
}

// Logout revokes the session token for its remaining lifetime. Best-effort:
// without Redis the token simply stays valid client-side until expiry.
func (s *authService) Logout(ctx context.Context, token string) error {
	return redis.RevokeSessionToken(ctx, token, s.tokenExpiry)
}

func (s *authService) GetUserByID(id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *authService) GetOrders(userID string) ([]model.Order, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.Orders == nil {
		return []model.Order{}, nil
	}
	return user.Orders, nil
}

// ExportOrders renders the user's order history as an xlsx workbook, one row
// per order line.
func (s *authService) ExportOrders(userID string) (*excelize.File, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	f := excelize.NewFile()
	const sheet = "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Order", "Date", "Status", "Product", "Quantity", "Unit Price", "Currency", "Order Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, order := range user.Orders {
		for _, item := range order.Items {
			values := []interface{}{
				order.ID,
				order.Date.Format("2006-01-02"),
				string(order.Status),
				item.ProductName,
				item.Quantity,
				item.Price.Amount,
				item.Price.CurrencyCode,
				order.Total.Amount,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}

	logger.Info("Order history exported", map[string]interface{}{
		"user_id": userID,
		"rows":    row - 2,
	})
	return f, nil
}
