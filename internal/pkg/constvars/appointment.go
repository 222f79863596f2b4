package constvars

import "time"

type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

const (
	MongoCollectionAppointments = "appointments"
)

const (
	// AppointmentTimeLayout is the optional appointment time, e.g. "10:30 AM".
	AppointmentTimeLayout = "3:04 PM"
	// AppointmentDefaultDurationInMinutes sizes calendar events for appointments with a time.
	AppointmentDefaultDurationInMinutes = 30
)

const (
	EventAppointmentCompleted   = "appointment.completed"
	EventAppointmentCancelled   = "appointment.cancelled"
	EventAppointmentRescheduled = "appointment.rescheduled"
)

const (
	CompletionWorkerLeaderLockKey = "appointments:completion-worker:leader"
	CompletionWorkerFallbackSpec  = "@hourly"
	CompletionWorkerLastRunKey    = "appointments:completion-worker:last-run"
	CompletionWorkerLastRunTTL    = 7 * 24 * time.Hour
)

const (
	CalendarProductID        = "-//appointment-service//appointments//EN"
	CalendarExportFilePrefix = "appointment_history"
	CalendarExportExtension  = ".ics"
)
