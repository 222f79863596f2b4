package responses

import (
	"appointment-service/internal/app/models"
	"time"
)

type Appointment struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patient_id"`
	PatientName     string    `json:"patient_name"`
	DoctorName      string    `json:"doctor_name"`
	DoctorSpecialty string    `json:"doctor_specialty,omitempty"`
	Location        string    `json:"location,omitempty"`
	Date            string    `json:"date"`
	Time            string    `json:"time,omitempty"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	IsPast          bool      `json:"is_past"`
	StatusLabel     string    `json:"status_label"`
	CreatedAt       time.Time `json:"created_at"`
}

type AppointmentDetail struct {
	Appointment
	CanCancel     bool `json:"can_cancel"`
	CanReschedule bool `json:"can_reschedule"`
}

type HistoryExport struct {
	ObjectName       string    `json:"object_name"`
	URL              string    `json:"url"`
	ExpiresAt        time.Time `json:"expires_at"`
	AppointmentCount int       `json:"appointment_count"`
}

type HealthCheck struct {
	Status              string                  `json:"status"`
	Version             string                  `json:"version"`
	LastCompletionSweep *models.CompletionSweep `json:"last_completion_sweep,omitempty"`
}
