package entities

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `gorm:"type:timestamp" json:"occurred_at"`

	Timestamp
}
