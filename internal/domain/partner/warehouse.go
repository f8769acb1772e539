package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopstack/backend/internal/domain/shared"
)

// Warehouse is a stock location. Every sale, purchase and stock row is
// scoped to exactly one warehouse.
type Warehouse struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:255;uniqueIndex;not null" json:"name"`
	Address   string    `gorm:"column:address;type:text" json:"address,omitempty"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Warehouse) TableName() string {
	return "warehouses"
}

func (w *Warehouse) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return shared.NewValidationError("name", "is required")
	}
	return nil
}
