package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	GetAppointmentSuccessMessage          = "get appointment successfully"
	GetAppointmentsSuccessMessage         = "get appointments successfully"
	GetPastAppointmentsSuccessMessage     = "get past appointments successfully"
	GetUpcomingAppointmentsSuccessMessage = "get upcoming appointments successfully"
	CreateAppointmentSuccessMessage       = "appointment created successfully"
	CancelAppointmentSuccessMessage       = "appointment cancelled successfully"
	RescheduleAppointmentSuccessMessage   = "appointment rescheduled successfully"
	ExportHistorySuccessMessage           = "appointment history exported successfully"
	HealthCheckSuccessMessage             = "service is healthy"
)
