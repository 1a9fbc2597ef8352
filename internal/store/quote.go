package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/caua/madeira/internal/models"
)

// QuoteStore persists quotes and their line items. Item collections are
// replaced wholesale on update (delete then re-insert), matching how the
// editing flow hands over a full snapshot.
type QuoteStore struct {
	db *gorm.DB
}

func NewQuoteStore(db *gorm.DB) *QuoteStore {
	return &QuoteStore{db: db}
}

// Save inserts a new quote together with its items and returns the assigned id.
// Local placeholder ids from the edit session are discarded so the insert hook
// assigns real ones.
func (s *QuoteStore) Save(q *models.Quote) (uint, error) {
	for i := range q.Items {
		if strings.HasPrefix(q.Items[i].ID, "local-") {
			q.Items[i].ID = ""
		}
		q.Items[i].Position = i
	}
	if err := s.db.Create(q).Error; err != nil {
		return 0, fmt.Errorf("save quote: %w", err)
	}
	return q.ID, nil
}

// Update rewrites the quote's attributes and replaces all of its line items.
// Items carry fresh ids after the re-insert; local placeholder ids from the
// edit session never reach the database.
func (s *QuoteStore) Update(q *models.Quote) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Quote{}).Where("id = ?", q.ID).Updates(map[string]any{
			"name":           q.Name,
			"client_id":      q.ClientID,
			"client_name":    q.ClientName,
			"date":           q.Date,
			"shipping_value": q.ShippingValue,
			"total_value":    q.TotalValue,
			"discount":       q.Discount,
			"notes":          q.Notes,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("quote_id = ?", q.ID).Delete(&models.QuoteItem{}).Error; err != nil {
			return err
		}
		for i := range q.Items {
			q.Items[i].ID = ""
			q.Items[i].QuoteID = q.ID
			q.Items[i].Position = i
		}
		if len(q.Items) > 0 {
			if err := tx.Create(&q.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update quote %d: %w", q.ID, err)
	}
	return nil
}

// Delete removes a quote, items first.
func (s *QuoteStore) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", id).Delete(&models.QuoteItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Quote{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete quote %d: %w", id, err)
	}
	return nil
}

// List returns all quotes with their items, newest first.
func (s *QuoteStore) List() ([]models.Quote, error) {
	var quotes []models.Quote
	if err := s.withItems().Order("date DESC, id DESC").Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

// Find loads one quote with its items. Returns gorm.ErrRecordNotFound when absent.
func (s *QuoteStore) Find(id uint) (models.Quote, error) {
	var quote models.Quote
	if err := s.withItems().First(&quote, id).Error; err != nil {
		return models.Quote{}, err
	}
	return quote, nil
}

// FindByClient returns a client's quote history, newest first.
func (s *QuoteStore) FindByClient(clientID uint) ([]models.Quote, error) {
	var quotes []models.Quote
	if err := s.withItems().Where("client_id = ?", clientID).
		Order("date DESC, id DESC").Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("quotes for client %d: %w", clientID, err)
	}
	return quotes, nil
}

// SearchByName returns quotes whose name contains the substring,
// case-insensitive, most recent id first.
func (s *QuoteStore) SearchByName(name string) ([]models.Quote, error) {
	var quotes []models.Quote
	if err := s.withItems().
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("id DESC").Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("search quotes %q: %w", name, err)
	}
	return quotes, nil
}

func (s *QuoteStore) withItems() *gorm.DB {
	return s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
