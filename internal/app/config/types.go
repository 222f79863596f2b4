package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App      App
		RabbitMQ AppRabbitMQ
		Minio    AppMinio
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
		// CompletionWorkerCronSpec schedules the sweep that marks past appointments as completed.
		CompletionWorkerCronSpec string
		// CompletionWorkerLockTTLInSeconds bounds how long one instance holds the sweep leadership.
		CompletionWorkerLockTTLInSeconds int
	}

	AppRabbitMQ struct {
		AppointmentEventQueue string
	}

	AppMinio struct {
		BucketName                          string
		PreSignedUrlObjectExpiryTimeInHours int
	}
)
