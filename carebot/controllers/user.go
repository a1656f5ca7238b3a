package controllers

import (
	"context"
	"errors"

	"carebot/carebot/sources/store"
	"carebot/carebot/utils/types"
)

var ErrUserNotFound = errors.New("user not found")

type UserController struct {
	store store.Store
}

func NewUserController(st store.Store) *UserController {
	return &UserController{store: st}
}

func (c *UserController) GetProfile(ctx context.Context, id int) (*types.UserPayload, error) {
	user, err := c.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &types.UserPayload{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Age:            user.Age,
		MedicalHistory: user.MedicalHistory,
		CreatedAt:      user.CreatedAt,
	}, nil
}

func (c *UserController) UpdateProfile(ctx context.Context, id int, req types.UpdateProfileRequest) (*types.UserPayload, error) {
	user, err := c.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Age = req.Age
	user.MedicalHistory = req.MedicalHistory
	if err := c.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return &types.UserPayload{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Age:            user.Age,
		MedicalHistory: user.MedicalHistory,
		CreatedAt:      user.CreatedAt,
	}, nil
}
