package psql

import (
	"carebot/carebot/config"
	"carebot/carebot/sources/store"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database implements store.Store over postgres via gorm.
type Database struct {
	DB        *gorm.DB
	closeOnce sync.Once
}

func NewDatabase(ctx context.Context, cfg config.Config) (*Database, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).AutoMigrate(
		&store.User{},
		&store.ChatMessage{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) CreateUser(ctx context.Context, user *store.User) error {
	err := d.DB.WithContext(ctx).Create(user).Error
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return store.ErrDuplicateEmail
	}
	return err
}

func (d *Database) GetUserByEmail(ctx context.Context, email string) (*store.User, error) {
	var user store.User
	err := d.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) GetUserByID(ctx context.Context, id int) (*store.User, error) {
	var user store.User
	err := d.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) UpdateUser(ctx context.Context, user *store.User) error {
	return d.DB.WithContext(ctx).Save(user).Error
}

func (d *Database) SaveChat(ctx context.Context, userID int, query, response string) (*store.ChatMessage, error) {
	msg := store.ChatMessage{
		UserID:   userID,
		Query:    query,
		Response: response,
	}
	if err := d.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (d *Database) GetChatHistory(ctx context.Context, userID int) ([]store.ChatMessage, error) {
	var msgs []store.ChatMessage
	err := d.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (d *Database) Close() error {
	d.closeOnce.Do(func() {
		sqlDB, err := d.DB.DB()
		if err != nil {
			return
		}
		sqlDB.Close()
	})
	return nil
}
