package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopstack/backend/internal/domain/shared"
)

// Category groups products for filtering and profit breakdowns.
type Category struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:255;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return shared.NewValidationError("name", "is required")
	}
	return nil
}

// ProductUnit is a unit of measure (piece, kg, box).
type ProductUnit struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:100;uniqueIndex;not null" json:"name"`
	ShortName string    `gorm:"column:short_name;size:20" json:"short_name,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ProductUnit) TableName() string {
	return "product_units"
}

func (u *ProductUnit) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return shared.NewValidationError("name", "is required")
	}
	return nil
}
