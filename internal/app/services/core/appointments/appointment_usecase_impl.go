package appointments

import (
	"appointment-service/internal/app/config"
	"appointment-service/internal/app/contracts"
	"appointment-service/internal/app/models"
	"appointment-service/internal/app/services/shared/calendar"
	"appointment-service/internal/pkg/appointmentdate"
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/dto/requests"
	"appointment-service/internal/pkg/dto/responses"
	"appointment-service/internal/pkg/exceptions"
	"appointment-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	Storage               contracts.Storage
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Clock                 models.Clock
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	clock models.Clock,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = newAppointmentUsecase(appointmentRepository, storage, eventPublisher, internalConfig, clock, logger)
	})
	return appointmentUsecaseInstance
}

func newAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	clock models.Clock,
	logger *zap.Logger,
) *appointmentUsecase {
	if clock == nil {
		clock = time.Now
	}
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		Storage:               storage,
		EventPublisher:        eventPublisher,
		InternalConfig:        internalConfig,
		Clock:                 clock,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, queryParams *requests.AppointmentQueryParams) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams),
	)

	appointments, err := uc.findPatientAppointments(ctx, queryParams)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointmentdate.SortDescending(appointments)

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return uc.buildAppointmentResponses(appointments, uc.Clock()), nil
}

func (uc *appointmentUsecase) FindPast(ctx context.Context, queryParams *requests.AppointmentQueryParams) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindPast called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams),
	)

	appointments, err := uc.findPatientAppointments(ctx, queryParams)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindPast error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.Clock()
	past, _ := partitionByPast(appointments, now)
	appointmentdate.SortDescending(past)

	uc.Log.Info("appointmentUsecase.FindPast succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(past)),
	)
	return uc.buildAppointmentResponses(past, now), nil
}

func (uc *appointmentUsecase) FindUpcoming(ctx context.Context, queryParams *requests.AppointmentQueryParams) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindUpcoming called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams),
	)

	appointments, err := uc.findPatientAppointments(ctx, queryParams)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindUpcoming error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.Clock()
	_, upcoming := partitionByPast(appointments, now)

	active := make([]models.Appointment, 0, len(upcoming))
	for _, appointment := range upcoming {
		if appointment.Status != constvars.AppointmentStatusCancelled {
			active = append(active, appointment)
		}
	}
	appointmentdate.SortAscending(active)

	uc.Log.Info("appointmentUsecase.FindUpcoming succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(active)),
	)
	return uc.buildAppointmentResponses(active, now), nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.AppointmentDetail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.getAppointment(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByID error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.buildAppointmentDetail(appointment, uc.Clock()), nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.AppointmentDetail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingAppointmentDateKey, request.Date),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	now := uc.Clock()
	if appointmentdate.IsPast(request.Date, now) {
		uc.Log.Info("appointmentUsecase.CreateAppointment rejected past date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentDateKey, request.Date),
		)
		return nil, exceptions.ErrAppointmentDateInPast(nil, request.Date)
	}

	appointment := &models.Appointment{
		ID:              utils.GenerateAppointmentID(),
		PatientID:       request.PatientID,
		PatientName:     request.PatientName,
		DoctorName:      request.DoctorName,
		DoctorSpecialty: request.DoctorSpecialty,
		Location:        request.Location,
		Date:            request.Date,
		Time:            request.Time,
		Status:          constvars.AppointmentStatusBooked,
		Notes:           request.Notes,
	}
	appointment.SetCreatedAtUpdatedAt(now)

	_, err = uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error saving appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return uc.buildAppointmentDetail(appointment, now), nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string) (*responses.AppointmentDetail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	now := uc.Clock()
	appointment, err := uc.getChangeableAppointment(ctx, appointmentID, now)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment appointment cannot be cancelled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.SetUpdatedAt(now)

	err = uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.EventAppointmentCancelled, appointment, now)

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.buildAppointmentDetail(appointment, now), nil
}

func (uc *appointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.RescheduleAppointmentRequest) (*responses.AppointmentDetail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingAppointmentDateKey, request.Date),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	now := uc.Clock()
	if appointmentdate.IsPast(request.Date, now) {
		uc.Log.Info("appointmentUsecase.RescheduleAppointment rejected past date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentDateKey, request.Date),
		)
		return nil, exceptions.ErrAppointmentDateInPast(nil, request.Date)
	}

	appointment, err := uc.getChangeableAppointment(ctx, appointmentID, now)
	if err != nil {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment appointment cannot be rescheduled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment.Date = request.Date
	appointment.Time = request.Time
	appointment.SetUpdatedAt(now)

	err = uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.EventAppointmentRescheduled, appointment, now)

	uc.Log.Info("appointmentUsecase.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.buildAppointmentDetail(appointment, now), nil
}

func (uc *appointmentUsecase) ExportCalendar(ctx context.Context, patientID string) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ExportCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	appointments, err := uc.findPatientAppointments(ctx, &requests.AppointmentQueryParams{PatientID: patientID})
	if err != nil {
		uc.Log.Error("appointmentUsecase.ExportCalendar error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointmentdate.SortAscending(appointments)
	content, count := calendar.BuildAppointmentCalendar(appointments, uc.Clock())

	uc.Log.Info("appointmentUsecase.ExportCalendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, count),
	)
	return content, nil
}

func (uc *appointmentUsecase) ExportHistory(ctx context.Context, patientID string) (*responses.HistoryExport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ExportHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	appointments, err := uc.findPatientAppointments(ctx, &requests.AppointmentQueryParams{PatientID: patientID})
	if err != nil {
		uc.Log.Error("appointmentUsecase.ExportHistory error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.Clock()
	past, _ := partitionByPast(appointments, now)
	appointmentdate.SortDescending(past)
	content, count := calendar.BuildAppointmentCalendar(past, now)

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateFileName(constvars.CalendarExportFilePrefix, patientID, constvars.CalendarExportExtension)
	objectName, err = uc.Storage.UploadObject(ctx, bucketName, objectName, constvars.MIMETextCalendar, content)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ExportHistory error uploading export",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ExportHistory error presigning export",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		// an export nobody can download is removed again
		if deleteErr := uc.Storage.DeleteObject(context.WithoutCancel(ctx), bucketName, objectName); deleteErr != nil {
			uc.Log.Warn("appointmentUsecase.ExportHistory error removing unreachable export",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectNameKey, objectName),
				zap.Error(deleteErr),
			)
		}
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.ExportHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int(constvars.LoggingAppointmentCountKey, count),
	)
	return &responses.HistoryExport{
		ObjectName:       objectName,
		URL:              url,
		ExpiresAt:        now.Add(expiry),
		AppointmentCount: count,
	}, nil
}

// CompletePastAppointments marks every booked appointment whose calendar day
// has ended as completed. A failing record is logged and skipped so one bad
// document does not block the sweep.
func (uc *appointmentUsecase) CompletePastAppointments(ctx context.Context) (int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CompletePastAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	booked, err := uc.AppointmentRepository.FindByStatus(ctx, constvars.AppointmentStatusBooked)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CompletePastAppointments error fetching booked appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	now := uc.Clock()
	completed := 0
	for i := range booked {
		appointment := &booked[i]
		if !appointmentdate.IsPast(appointment.Date, now) {
			continue
		}

		appointment.Status = constvars.AppointmentStatusCompleted
		appointment.SetUpdatedAt(now)
		if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
			uc.Log.Warn("appointmentUsecase.CompletePastAppointments error updating appointment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
				zap.Error(err),
			)
			continue
		}

		uc.publish(ctx, constvars.EventAppointmentCompleted, appointment, now)
		completed++
	}

	uc.Log.Info("appointmentUsecase.CompletePastAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(booked)),
		zap.Int(constvars.LoggingCompletedCountKey, completed),
	)
	return completed, nil
}

func (uc *appointmentUsecase) findPatientAppointments(ctx context.Context, queryParams *requests.AppointmentQueryParams) ([]models.Appointment, error) {
	if queryParams == nil || queryParams.PatientID == "" {
		return nil, exceptions.ErrPatientIDRequired(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByPatientID(ctx, queryParams.PatientID)
	if err != nil {
		return nil, err
	}

	if queryParams.Status == "" {
		return appointments, nil
	}

	filtered := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if string(appointment.Status) == queryParams.Status {
			filtered = append(filtered, appointment)
		}
	}
	return filtered, nil
}

func (uc *appointmentUsecase) getAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) getChangeableAppointment(ctx context.Context, appointmentID string, now time.Time) (*models.Appointment, error) {
	appointment, err := uc.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointmentdate.IsPast(appointment.Date, now) {
		return nil, exceptions.ErrAppointmentAlreadyPast(nil, appointmentID)
	}
	if !appointment.IsBooked() {
		return nil, exceptions.ErrAppointmentNotActive(nil, appointmentID, appointment.Status)
	}
	return appointment, nil
}

// publish is best effort: the record is already persisted and the event only
// notifies downstream consumers.
func (uc *appointmentUsecase) publish(ctx context.Context, eventName string, appointment *models.Appointment, now time.Time) {
	if uc.EventPublisher == nil {
		return
	}

	err := uc.EventPublisher.PublishAppointmentEvent(ctx, &models.AppointmentEvent{
		Event:         eventName,
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		Date:          appointment.Date,
		Status:        string(appointment.Status),
		OccurredAt:    now,
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}
