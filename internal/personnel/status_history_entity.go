package personnel

import (
	"time"

	"github.com/google/uuid"
)

// DefaultChangeReason is recorded when the caller did not supply one.
// A reason is only mandatory when an employee leaves.
const DefaultChangeReason = "status changed"

// ConversionReason is recorded on the candidate -> employee transition.
const ConversionReason = "candidate converted to employee"

// StatusHistory is an immutable audit row, written exactly once per
// accepted status transition in the same transaction as the personnel
// update. The repository exposes no update or delete for it.
type StatusHistory struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	PersonnelID uuid.UUID  `gorm:"column:personnel_id;type:uuid;not null;index"`
	OldStatus   string     `gorm:"column:old_status;type:varchar(20);not null"`
	NewStatus   string     `gorm:"column:new_status;type:varchar(20);not null"`
	ChangedBy   *uuid.UUID `gorm:"column:changed_by;type:uuid"`
	Reason      string     `gorm:"column:reason;type:text;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (StatusHistory) TableName() string {
	return "personnel_status_history"
}
