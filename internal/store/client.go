// Package store implements the persistence layer over GORM.
package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/caua/madeira/internal/models"
)

// ClientStore persists clients.
type ClientStore struct {
	db *gorm.DB
}

func NewClientStore(db *gorm.DB) *ClientStore {
	return &ClientStore{db: db}
}

// Save inserts a new client and returns the assigned id.
func (s *ClientStore) Save(c *models.Client) (uint, error) {
	if err := s.db.Create(c).Error; err != nil {
		return 0, fmt.Errorf("save client: %w", err)
	}
	return c.ID, nil
}

// Update rewrites the client's attributes.
func (s *ClientStore) Update(c *models.Client) error {
	if err := s.db.Model(&models.Client{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":     c.Name,
		"address":  c.Address,
		"phone":    c.Phone,
		"email":    c.Email,
		"document": c.Document,
	}).Error; err != nil {
		return fmt.Errorf("update client %d: %w", c.ID, err)
	}
	return nil
}

// Delete removes a client by id.
func (s *ClientStore) Delete(id uint) error {
	if err := s.db.Delete(&models.Client{}, id).Error; err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	return nil
}

// List returns clients ordered by name. A non-empty query filters by
// case-insensitive name substring.
func (s *ClientStore) List(query string) ([]models.Client, error) {
	var clients []models.Client
	db := s.db.Order("name")
	if query != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if err := db.Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// Find loads one client. Returns gorm.ErrRecordNotFound when absent.
func (s *ClientStore) Find(id uint) (models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		return models.Client{}, err
	}
	return client, nil
}
