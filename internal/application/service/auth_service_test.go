package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
	"github.com/tillpoint/tillpoint-api/pkg/utils"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *utils.JWTManager) {
	t.Helper()
	userRepo := &fakeUserRepo{}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(userRepo, jwtManager), userRepo, jwtManager
}

func seedUser(t *testing.T, userRepo *fakeUserRepo, email, password string, role enum.UserRole) entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := entity.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	userRepo.Create(context.Background(), &user)
	return userRepo.users[len(userRepo.users)-1]
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, userRepo, jwtManager := newAuthFixture(t)
	user := seedUser(t, userRepo, "owner@example.com", "secret123", enum.RoleOwner)

	result, err := svc.Login(context.Background(), "owner@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if result.User.ID != user.ID.String() {
		t.Errorf("User.ID = %q, want %q", result.User.ID, user.ID)
	}
	if result.User.Role != "OWNER" {
		t.Errorf("User.Role = %q, want OWNER", result.User.Role)
	}

	claims, err := jwtManager.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != enum.RoleOwner {
		t.Errorf("claims = %v/%v, want %v/OWNER", claims.UserID, claims.Role, user.ID)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "owner@example.com", "secret123", enum.RoleOwner)

	_, err := svc.Login(context.Background(), "owner@example.com", "wrong")
	if err != apperror.ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmailIsIndistinguishable(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "owner@example.com", "secret123", enum.RoleOwner)

	_, wrongPassword := svc.Login(context.Background(), "owner@example.com", "wrong")
	_, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if wrongPassword != unknownEmail {
		t.Errorf("wrong password error %v differs from unknown email error %v", wrongPassword, unknownEmail)
	}
}
