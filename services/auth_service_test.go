package services

import (
	"testing"
	"time"

	"hotelms-backend/models"
	"hotelms-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	utils.InitJWT("test-secret", 15*time.Minute, 7*24*time.Hour)
}

func seedAdmin(t *testing.T, db *gorm.DB, username, password string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &models.Admin{FullName: "Platform Admin", Username: username, Password: string(hash)}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func setEmployeePassword(t *testing.T, db *gorm.DB, employee *models.Employee, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Model(employee).Update("password", string(hash)).Error)
}

func TestAdminLogin(t *testing.T) {
	db := newTestDB(t)
	admin := seedAdmin(t, db, "root@hotelms.local", "s3cret")
	svc := NewAuthService(db)

	result, err := svc.Login("root@hotelms.local", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, result.UserID)
	assert.Equal(t, RoleSuperAdmin, result.Role)
	assert.Zero(t, result.HotelID)
	assert.NotEmpty(t, result.RefreshToken)

	claims, err := utils.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, RoleSuperAdmin, claims.Role)
	assert.Zero(t, claims.HotelID)

	_, err = svc.Login("root@hotelms.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@hotelms.local", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("", "")
	assert.True(t, IsValidation(err))
}

func TestEmployeeLogin(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	employee := seedEmployee(t, db, hotel.ID, "kara", models.RoleReceptionist)
	setEmployeePassword(t, db, employee, "motdepasse")
	svc := NewAuthService(db)

	result, err := svc.Login(employee.Email, "motdepasse")
	require.NoError(t, err)
	assert.Equal(t, employee.ID, result.UserID)
	assert.Equal(t, models.RoleReceptionist, result.Role)
	assert.Equal(t, hotel.ID, result.HotelID)

	claims, err := utils.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, hotel.ID, claims.HotelID)

	// Login is case-insensitive on the username.
	_, err = svc.Login("KARA@hotel.test", "motdepasse")
	assert.NoError(t, err)

	_, err = svc.Login(employee.Email, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Deactivated accounts look like unknown users.
	require.NoError(t, db.Model(employee).Update("active", false).Error)
	_, err = svc.Login(employee.Email, "motdepasse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEmployeeLoginSubscriptionGate(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	employee := seedEmployee(t, db, hotel.ID, "louis", models.RoleManager)
	setEmployeePassword(t, db, employee, "motdepasse")
	svc := NewAuthService(db)

	// Deactivated subscription locks every staff member out.
	require.NoError(t, db.Model(hotel).Update("subscription_active", false).Error)
	_, err := svc.Login(employee.Email, "motdepasse")
	assert.ErrorIs(t, err, ErrSubscriptionInactive)

	// An active flag with a past expiry is just as dead.
	expired := time.Now().AddDate(0, -1, 0)
	require.NoError(t, db.Model(hotel).Updates(map[string]interface{}{
		"subscription_active":     true,
		"subscription_expires_at": expired,
	}).Error)
	_, err = svc.Login(employee.Email, "motdepasse")
	assert.ErrorIs(t, err, ErrSubscriptionInactive)

	// Future expiry lets them back in.
	future := time.Now().AddDate(0, 1, 0)
	require.NoError(t, db.Model(hotel).Update("subscription_expires_at", future).Error)
	_, err = svc.Login(employee.Email, "motdepasse")
	assert.NoError(t, err)
}

func TestRefreshRotation(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	employee := seedEmployee(t, db, hotel.ID, "marie", models.RoleReceptionist)
	setEmployeePassword(t, db, employee, "motdepasse")
	svc := NewAuthService(db)

	login, err := svc.Login(employee.Email, "motdepasse")
	require.NoError(t, err)

	rotated, err := svc.Refresh(login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, rotated.UserID)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	// The old token was rotated out: a second use fails.
	_, err = svc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// The new one works exactly once more.
	_, err = svc.Refresh(rotated.RefreshToken)
	assert.NoError(t, err)

	_, err = svc.Refresh("")
	assert.True(t, IsValidation(err))
	_, err = svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
