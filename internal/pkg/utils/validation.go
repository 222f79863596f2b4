package utils

import (
	"appointment-service/internal/pkg/appointmentdate"
	"appointment-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("appointment_date", validateAppointmentDate)
	validate.RegisterValidation("appointment_time", validateAppointmentTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Only the structured "Monday, 15 Jan 2024" form is accepted on write, even
// though stored records may carry anything the fallback parser understands.
func validateAppointmentDate(fl validator.FieldLevel) bool {
	_, source := appointmentdate.ParseResult(fl.Field().String())
	return source == appointmentdate.SourcePattern
}

func validateAppointmentTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(constvars.AppointmentTimeLayout, value)
	return err == nil
}
