package controllers

import (
	"context"
	"errors"
	"testing"

	"carebot/carebot/config"
	"carebot/carebot/sources/memstore"
	"carebot/carebot/utils/types"

	"github.com/golang-jwt/jwt/v5"
)

func newTestAuthController() *AuthController {
	return NewAuthController(memstore.New(), config.Config{JWTSecret: "test-secret"})
}

func registerReq() types.RegisterRequest {
	return types.RegisterRequest{
		Name:           "Asha",
		Email:          "asha@example.com",
		Password:       "s3cret-pass",
		Age:            34,
		MedicalHistory: "asthma",
	}
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	ctrl := newTestAuthController()
	ctx := context.Background()

	if err := ctrl.Register(ctx, registerReq()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := ctrl.Login(ctx, "asha@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if user == nil || user.Email != "asha@example.com" || user.Name != "Asha" {
		t.Errorf("payload = %+v", user)
	}
	if user.MedicalHistory != "asthma" {
		t.Errorf("medical history not carried through: %q", user.MedicalHistory)
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if int(claims["user_id"].(float64)) != user.ID {
		t.Errorf("user_id claim = %v, want %d", claims["user_id"], user.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctrl := newTestAuthController()
	ctx := context.Background()

	if err := ctrl.Register(ctx, registerReq()); err != nil {
		t.Fatal(err)
	}
	_, _, err := ctrl.Login(ctx, "asha@example.com", "wrong-pass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	ctrl := newTestAuthController()
	_, _, err := ctrl.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctrl := newTestAuthController()
	ctx := context.Background()

	if err := ctrl.Register(ctx, registerReq()); err != nil {
		t.Fatal(err)
	}
	err := ctrl.Register(ctx, registerReq())
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestPasswordIsNotStoredInClear(t *testing.T) {
	st := memstore.New()
	ctrl := NewAuthController(st, config.Config{JWTSecret: "test-secret"})
	ctx := context.Background()

	if err := ctrl.Register(ctx, registerReq()); err != nil {
		t.Fatal(err)
	}
	user, err := st.GetUserByEmail(ctx, "asha@example.com")
	if err != nil || user == nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if user.PasswordHash == "s3cret-pass" || user.PasswordHash == "" {
		t.Errorf("password must be stored as a bcrypt hash")
	}
}
