package requests

type AppointmentQueryParams struct {
	PatientID string `json:"patient_id"`
	Status    string `json:"status"`
}

type CreateAppointmentRequest struct {
	PatientID       string `json:"patient_id" validate:"required,max=64"`
	PatientName     string `json:"patient_name" validate:"required,max=128"`
	DoctorName      string `json:"doctor_name" validate:"required,max=128"`
	DoctorSpecialty string `json:"doctor_specialty" validate:"max=128"`
	Location        string `json:"location" validate:"max=256"`
	Date            string `json:"date" validate:"required,appointment_date"`
	Time            string `json:"time" validate:"appointment_time"`
	Notes           string `json:"notes" validate:"max=1024"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" validate:"required,appointment_date"`
	Time string `json:"time" validate:"appointment_time"`
}
