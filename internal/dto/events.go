package dto

import "time"

// Published to Kafka when a registration is created or its workflow
// status changes; the notification service mails the applicant.
type RegistrationEvent struct {
	RegistrationID string    `json:"registration_id"`
	NamaLengkap    string    `json:"nama_lengkap"`
	Email          string    `json:"email"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

const (
	EventRegistrationCreated = "registration.created"
	EventRegistrationStatus  = "registration.status_changed"
)
