package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"oneof":            "must be one of [%s]",
	"appointment_date": "must look like 'Monday, 15 Jan 2024'",
	"appointment_time": "must look like '10:30 AM'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientAppointmentAlreadyPast        = "this appointment already took place"
	ErrClientAppointmentNotActive          = "this appointment can no longer be changed"
	ErrClientAppointmentDateInPast         = "appointment date cannot be in the past"
	ErrClientPatientIDRequired             = "patient_id is required"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientRequestBodyTooLarge           = "request body is too large"
	ErrClientRouteNotFound                 = "the requested resource does not exist"
	ErrClientMethodNotAllowed              = "method is not allowed for this resource"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevURLParamIDValidationFailed = "url param %s validation failed"
	ErrDevMissingRequestID           = "request id not found in context"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevAppointmentNotFound        = "appointment %s does not exist"
	ErrDevAppointmentAlreadyPast     = "appointment %s is past its calendar day"
	ErrDevAppointmentNotActive       = "appointment %s has status %s"
	ErrDevAppointmentDateInPast      = "requested appointment date %s is already past"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevRedisGetNoData             = "no data found in redis for key %s"
	ErrDevRedisSetData               = "failed to set data in redis"
	ErrDevRedisDeleteData            = "failed to delete data in redis"
	ErrDevRedisSetNX                 = "failed to set data in redis if not exists"
	ErrDevRedisExpire                = "failed to extend redis key expiration"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevRabbitMQOpenChannel        = "failed to open rabbitmq channel"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevMinioFailedToDeleteObject  = "failed to delete object in bucket %s"
	ErrDevTooManyRequests            = "rate limit exceeded for %s"
	ErrDevRequestBodyTooLarge        = "request body exceeds %d bytes"
	ErrDevPanicRecovered             = "recovered from panic"
	ErrDevRouteNotFound              = "no route for %s %s"
	ErrDevLockNotOwned               = "lock %s is not owned by this holder"
)
