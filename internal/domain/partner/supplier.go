package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopstack/backend/internal/domain/shared"
)

// Supplier is a party the shop purchases from.
type Supplier struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Phone     string    `gorm:"column:phone;size:50" json:"phone,omitempty"`
	Email     string    `gorm:"column:email;size:255" json:"email,omitempty"`
	Address   string    `gorm:"column:address;type:text" json:"address,omitempty"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

func (s *Supplier) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return shared.NewValidationError("name", "is required")
	}
	return nil
}
