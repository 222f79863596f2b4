package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingQueryParamsKey        = "query_params"
	LoggingResponseLengthKey     = "response_length"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingAppointmentCountKey   = "appointment_count"
	LoggingAppointmentDateKey    = "appointment_date"
	LoggingPatientIDKey          = "patient_id"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueNameKey          = "queue_name"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingCronSpecKey           = "cron_spec"
	LoggingCompletedCountKey     = "completed_count"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingPanicKey              = "panic"
)
