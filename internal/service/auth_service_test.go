package service

import (
	"errors"
	"testing"
	"time"

	"github.com/creamery-next/internal/config"
	"github.com/creamery-next/internal/constants"
	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/repository"
)

func newAuthService() *AuthService {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "unit-test-secret-key-0123456789abcdef",
			ExpireHours: 1,
		},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{
				MinLength:     8,
				RequireNumber: true,
			},
		},
	}
	return NewAuthService(cfg, repository.NewUserRepository(models.DB))
}

func TestRegisterCreatesCustomer(t *testing.T) {
	setupTestDB(t)
	svc := newAuthService()

	user, token, expiresAt, err := svc.Register(RegisterInput{
		Email:    "Scoops@App.com",
		Password: "password123",
		Address:  " 1 Scoop Street ",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "scoops@app.com" {
		t.Fatalf("email should be normalized, got %s", user.Email)
	}
	if user.Role != constants.RoleCustomer {
		t.Fatalf("registered user must be CUSTOMER, got %s", user.Role)
	}
	if user.Name != "scoops" {
		t.Fatalf("name should fall back to email local part, got %s", user.Name)
	}
	if user.Address != "1 Scoop Street" {
		t.Fatalf("address should be trimmed, got %q", user.Address)
	}
	if token == "" || !expiresAt.After(time.Now()) {
		t.Fatalf("expected a token with a future expiry")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse jwt: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("claims user id mismatch: %d vs %d", claims.UserID, user.ID)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	setupTestDB(t)
	svc := newAuthService()

	if _, _, _, err := svc.Register(RegisterInput{Email: "not-an-email", Password: "password123"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail, got %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "short1"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword for short password, got %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "passwordonly"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword for password without number, got %v", err)
	}

	if _, _, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "password123"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{Email: "A@b.com", Password: "password123"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists for duplicate email, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	setupTestDB(t)
	svc := newAuthService()

	registered, _, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, _, err := svc.Login("a@b.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != registered.ID || token == "" {
		t.Fatalf("login result mismatch")
	}
	if user.LastLoginAt == nil {
		t.Fatalf("last_login_at should be set")
	}

	if _, _, _, err := svc.Login("a@b.com", "wrong-pass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, _, err := svc.Login("ghost@b.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLoginDisabledUser(t *testing.T) {
	setupTestDB(t)
	svc := newAuthService()

	user, _, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := models.DB.Model(&models.User{}).Where("id = ?", user.ID).
		Update("status", constants.UserStatusDisabled).Error; err != nil {
		t.Fatalf("disable user: %v", err)
	}

	if _, _, _, err := svc.Login("a@b.com", "password123"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("want ErrUserDisabled, got %v", err)
	}
}

func TestLogoutBumpsTokenVersion(t *testing.T) {
	setupTestDB(t)
	svc := newAuthService()

	user, _, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(user.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	var reloaded models.User
	if err := models.DB.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("token version should bump: %d -> %d", user.TokenVersion, reloaded.TokenVersion)
	}
	if reloaded.TokenInvalidBefore == nil {
		t.Fatalf("token_invalid_before should be set")
	}

	if err := svc.Logout(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown user, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	setupTestDB(t)
	svc := newAuthService()

	user, _, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong-pass1", "newpassword123"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("want ErrInvalidPassword for wrong old password, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "password123", "weak"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "password123", "newpassword123"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, _, _, err := svc.Login("a@b.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password should stop working, got %v", err)
	}
	if _, _, _, err := svc.Login("a@b.com", "newpassword123"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	setupTestDB(t)
	svc := newAuthService()

	user, _, _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.UpdateProfile(user.ID, UpdateProfileInput{}); !errors.Is(err, ErrProfileEmpty) {
		t.Fatalf("want ErrProfileEmpty, got %v", err)
	}

	name := "Scoop Fan"
	address := "2 Cone Court"
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateProfile(user.ID, UpdateProfileInput{
		Name:        &name,
		Address:     &address,
		DateOfBirth: &dob,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != name || updated.Address != address {
		t.Fatalf("profile mismatch: %+v", updated)
	}
	if updated.DateOfBirth == nil || !updated.DateOfBirth.Equal(dob) {
		t.Fatalf("date of birth mismatch")
	}

	if _, err := svc.UpdateProfile(9999, UpdateProfileInput{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown user, got %v", err)
	}
}
