package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelms-backend/models"
	"hotelms-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RoleSuperAdmin identifies platform admins in JWT claims; hotel staff carry
// their employee role.
const RoleSuperAdmin = "superadmin"

// AuthService authenticates super-admins and hotel staff and rotates their
// refresh tokens.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       uint   `json:"user_id"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	HotelID      uint   `json:"hotel_id,omitempty"`
}

// Login authenticates by username. Super-admin usernames are tried first,
// then employee emails. Staff of a hotel whose subscription is inactive or
// expired are locked out.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, validationf("username and password are required")
	}

	var admin models.Admin
	err := s.DB.Where("username = ?", username).First(&admin).Error
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return s.issueAdminTokens(&admin)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	var employee models.Employee
	if err := s.DB.Where("email = ? AND active = ?", username, true).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, employee.HotelID).Error; err != nil {
		return nil, fmt.Errorf("failed to load hotel %d: %w", employee.HotelID, err)
	}
	if !subscriptionUsable(&hotel) {
		return nil, ErrSubscriptionInactive
	}

	return s.issueEmployeeTokens(&employee)
}

// Refresh exchanges a valid refresh token for a new token pair. Tokens are
// single-use: the stored hash is rotated on every call.
func (s *AuthService) Refresh(refreshToken string) (*LoginResult, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, validationf("refresh token is required")
	}
	hash := utils.HashRefreshToken(refreshToken)
	now := time.Now().UTC()

	var admin models.Admin
	err := s.DB.
		Where("refresh_token_hash = ? AND refresh_token_expires > ?", hash, now).
		First(&admin).Error
	if err == nil {
		return s.issueAdminTokens(&admin)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	var employee models.Employee
	if err := s.DB.
		Where("refresh_token_hash = ? AND refresh_token_expires > ? AND active = ?", hash, now, true).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	return s.issueEmployeeTokens(&employee)
}

func subscriptionUsable(hotel *models.Hotel) bool {
	if !hotel.SubscriptionActive {
		return false
	}
	if hotel.SubscriptionExpiresAt != nil && hotel.SubscriptionExpiresAt.Before(time.Now()) {
		return false
	}
	return true
}

func (s *AuthService) issueAdminTokens(admin *models.Admin) (*LoginResult, error) {
	access, err := utils.GenerateAccessToken(admin.ID, RoleSuperAdmin, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	hash := utils.HashRefreshToken(refresh)
	expires := time.Now().UTC().Add(utils.RefreshTokenExpiry())
	if err := s.DB.Model(admin).Updates(map[string]interface{}{
		"refresh_token_hash":    hash,
		"refresh_token_expires": expires,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       admin.ID,
		FullName:     admin.FullName,
		Role:         RoleSuperAdmin,
	}, nil
}

func (s *AuthService) issueEmployeeTokens(employee *models.Employee) (*LoginResult, error) {
	access, err := utils.GenerateAccessToken(employee.ID, employee.Role, employee.HotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	hash := utils.HashRefreshToken(refresh)
	expires := time.Now().UTC().Add(utils.RefreshTokenExpiry())
	if err := s.DB.Model(employee).Updates(map[string]interface{}{
		"refresh_token_hash":    hash,
		"refresh_token_expires": expires,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       employee.ID,
		FullName:     employee.FullName,
		Role:         employee.Role,
		HotelID:      employee.HotelID,
	}, nil
}
