package constvars

type ContextKey string

const (
	ResourceAppointments = "appointments"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "APPT_SVC_"
)

const (
	URLParamAppointmentID = "appointmentID"
	QueryParamPatientID   = "patient_id"
	QueryParamStatus      = "status"
)
