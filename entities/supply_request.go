package entities

import (
	"github.com/google/uuid"
)

type SupplyRequest struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ItemType string    `json:"item_type"`
	Status   string    `json:"status"` // "Pending", "Fulfilled", "Rejected"

	Timestamp
}
