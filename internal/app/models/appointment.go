package models

import (
	"appointment-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type Appointment struct {
	ID              string                      `bson:"_id"`
	PatientID       string                      `bson:"patientId"`
	PatientName     string                      `bson:"patientName"`
	DoctorName      string                      `bson:"doctorName"`
	DoctorSpecialty string                      `bson:"doctorSpecialty,omitempty"`
	Location        string                      `bson:"location,omitempty"`
	Date            string                      `bson:"date,omitempty"`
	Time            string                      `bson:"time,omitempty"`
	Status          constvars.AppointmentStatus `bson:"status"`
	Notes           string                      `bson:"notes,omitempty"`
	TimeModel       `bson:",inline"`
}

// AppointmentDate exposes the raw date string for classification; records
// stored without a date report ok=false.
func (a Appointment) AppointmentDate() (string, bool) {
	return a.Date, a.Date != ""
}

func (a Appointment) IsBooked() bool {
	return a.Status == constvars.AppointmentStatusBooked
}

// Clock returns the current moment. Production wiring uses time.Now.
type Clock func() time.Time

func (a *Appointment) ConvertToBsonM() bson.M {
	return bson.M{
		"patientName":     a.PatientName,
		"doctorName":      a.DoctorName,
		"doctorSpecialty": a.DoctorSpecialty,
		"location":        a.Location,
		"date":            a.Date,
		"time":            a.Time,
		"status":          a.Status,
		"notes":           a.Notes,
		"updatedAt":       a.UpdatedAt,
	}
}

type AppointmentEvent struct {
	Event         string    `json:"event"`
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	Date          string    `json:"date"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
