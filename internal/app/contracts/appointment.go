package contracts

import (
	"appointment-service/internal/app/models"
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/dto/requests"
	"appointment-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context, queryParams *requests.AppointmentQueryParams) ([]responses.Appointment, error)
	FindPast(ctx context.Context, queryParams *requests.AppointmentQueryParams) ([]responses.Appointment, error)
	FindUpcoming(ctx context.Context, queryParams *requests.AppointmentQueryParams) ([]responses.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*responses.AppointmentDetail, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.AppointmentDetail, error)
	CancelAppointment(ctx context.Context, appointmentID string) (*responses.AppointmentDetail, error)
	RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.RescheduleAppointmentRequest) (*responses.AppointmentDetail, error)
	ExportCalendar(ctx context.Context, patientID string) ([]byte, error)
	ExportHistory(ctx context.Context, patientID string) (*responses.HistoryExport, error)
	CompletePastAppointments(ctx context.Context) (int, error)
}

type AppointmentRepository interface {
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByStatus(ctx context.Context, status constvars.AppointmentStatus) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
}
