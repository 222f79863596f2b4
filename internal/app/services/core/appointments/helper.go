package appointments

import (
	"appointment-service/internal/app/models"
	"appointment-service/internal/pkg/appointmentdate"
	"appointment-service/internal/pkg/dto/responses"
	"time"
)

// partitionByPast splits appointments while keeping their relative order.
func partitionByPast(appointments []models.Appointment, now time.Time) (past, upcoming []models.Appointment) {
	past = make([]models.Appointment, 0, len(appointments))
	upcoming = make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointmentdate.IsPast(appointment.Date, now) {
			past = append(past, appointment)
		} else {
			upcoming = append(upcoming, appointment)
		}
	}
	return past, upcoming
}

func (uc *appointmentUsecase) buildAppointmentResponses(appointments []models.Appointment, now time.Time) []responses.Appointment {
	response := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		response = append(response, buildAppointmentResponse(appointment, now))
	}
	return response
}

func (uc *appointmentUsecase) buildAppointmentDetail(appointment *models.Appointment, now time.Time) *responses.AppointmentDetail {
	base := buildAppointmentResponse(*appointment, now)
	changeable := appointment.IsBooked() && !base.IsPast
	return &responses.AppointmentDetail{
		Appointment:   base,
		CanCancel:     changeable,
		CanReschedule: changeable,
	}
}

func buildAppointmentResponse(appointment models.Appointment, now time.Time) responses.Appointment {
	return responses.Appointment{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.PatientName,
		DoctorName:      appointment.DoctorName,
		DoctorSpecialty: appointment.DoctorSpecialty,
		Location:        appointment.Location,
		Date:            appointment.Date,
		Time:            appointment.Time,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		IsPast:          appointmentdate.IsPast(appointment.Date, now),
		StatusLabel:     appointmentdate.StatusLabel(appointment.Date, now),
		CreatedAt:       appointment.CreatedAt,
	}
}
