package appointments

import (
	"appointment-service/internal/app/models"
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/dto/requests"
	"appointment-service/internal/pkg/dto/responses"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointmentRepository) FindByStatus(ctx context.Context, status constvars.AppointmentStatus) ([]models.Appointment, error) {
	args := m.Called(ctx, status)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *mockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, content []byte) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, content)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) DeleteObject(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type mockLocker struct {
	mock.Mock
}

func (m *mockLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLocker) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *mockLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type mockAppointmentUsecase struct {
	mock.Mock
}

func (m *mockAppointmentUsecase) FindAll(ctx context.Context, queryParams *requests.AppointmentQueryParams) ([]responses.Appointment, error) {
	args := m.Called(ctx, queryParams)
	result, _ := args.Get(0).([]responses.Appointment)
	return result, args.Error(1)
}

func (m *mockAppointmentUsecase) FindPast(ctx context.Context, queryParams *requests.AppointmentQueryParams) ([]responses.Appointment, error) {
	args := m.Called(ctx, queryParams)
	result, _ := args.Get(0).([]responses.Appointment)
	return result, args.Error(1)
}

func (m *mockAppointmentUsecase) FindUpcoming(ctx context.Context, queryParams *requests.AppointmentQueryParams) ([]responses.Appointment, error) {
	args := m.Called(ctx, queryParams)
	result, _ := args.Get(0).([]responses.Appointment)
	return result, args.Error(1)
}

func (m *mockAppointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.AppointmentDetail, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*responses.AppointmentDetail)
	return result, args.Error(1)
}

func (m *mockAppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.AppointmentDetail, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AppointmentDetail)
	return result, args.Error(1)
}

func (m *mockAppointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string) (*responses.AppointmentDetail, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*responses.AppointmentDetail)
	return result, args.Error(1)
}

func (m *mockAppointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.RescheduleAppointmentRequest) (*responses.AppointmentDetail, error) {
	args := m.Called(ctx, appointmentID, request)
	result, _ := args.Get(0).(*responses.AppointmentDetail)
	return result, args.Error(1)
}

func (m *mockAppointmentUsecase) ExportCalendar(ctx context.Context, patientID string) ([]byte, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).([]byte)
	return result, args.Error(1)
}

func (m *mockAppointmentUsecase) ExportHistory(ctx context.Context, patientID string) (*responses.HistoryExport, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*responses.HistoryExport)
	return result, args.Error(1)
}

func (m *mockAppointmentUsecase) CompletePastAppointments(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
