package events

import "time"

const PersonnelLifecycleTopic = "hr.personnel.lifecycle.v1"

const (
	EventTypeStatusChanged = "personnel_status_changed"
	EventTypeConverted     = "personnel_converted"
)

type PersonnelStatusChangedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	PersonnelID string    `json:"personnel_id"`
	Kind        string    `json:"kind"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	ChangedBy   string    `json:"changed_by,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
