package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rohansood98/ggs-accounting/internal/auth"
	"github.com/rohansood98/ggs-accounting/internal/models"
)

// CreateUser stores a new login with a hashed password and returns its id.
func (s *Store) CreateUser(username, password, role string) (uint, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	u := models.User{Username: username, PasswordHash: hash, Role: role}
	if err := s.db.Create(&u).Error; err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return u.ID, nil
}

// GetUser returns the user or nil when the username is unknown.
func (s *Store) GetUser(username string) (*models.User, error) {
	var u models.User
	err := s.db.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	return &u, nil
}

// VerifyUser checks the credentials and returns the user's role, or an empty
// string when the username or password does not match.
func (s *Store) VerifyUser(username, password string) (string, error) {
	u, err := s.GetUser(username)
	if err != nil {
		return "", fmt.Errorf("verify user: %w", err)
	}
	if u == nil || !auth.CheckPassword(password, u.PasswordHash) {
		return "", nil
	}
	return u.Role, nil
}
