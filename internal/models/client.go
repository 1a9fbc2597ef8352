package models

import "time"

// Client represents a customer of the lumber yard.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `gorm:"size:255;not null;index" json:"name"`
	Address string `gorm:"size:255;not null" json:"address"`
	Phone   string `gorm:"size:50;not null" json:"phone"`
	Email   string `gorm:"size:255" json:"email,omitempty"`
	// Document is the CPF/CNPJ tax identifier.
	Document string `gorm:"size:50" json:"document,omitempty"`
}

// IsPersisted reports whether the client has been saved at least once.
func (c *Client) IsPersisted() bool {
	return c.ID != 0
}
