package controllers

import (
	"context"
	"errors"
	"time"

	"carebot/carebot/config"
	"carebot/carebot/sources/store"
	"carebot/carebot/utils/types"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthController struct {
	store store.Store
	cfg   config.Config
}

func NewAuthController(st store.Store, cfg config.Config) *AuthController {
	return &AuthController{
		store: st,
		cfg:   cfg,
	}
}

func (c *AuthController) Register(ctx context.Context, req types.RegisterRequest) error {
	existing, err := c.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := store.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Age:            req.Age,
		MedicalHistory: req.MedicalHistory,
	}
	err = c.store.CreateUser(ctx, &user)
	if errors.Is(err, store.ErrDuplicateEmail) {
		return ErrUserExists
	}
	return err
}

func (c *AuthController) Login(ctx context.Context, email, password string) (string, *types.UserPayload, error) {
	user, err := c.store.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.cfg.JWTSecret))
	if err != nil {
		return "", nil, err
	}

	return signed, &types.UserPayload{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Age:            user.Age,
		MedicalHistory: user.MedicalHistory,
		CreatedAt:      user.CreatedAt,
	}, nil
}
