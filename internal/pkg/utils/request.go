package utils

import (
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/dto/requests"
	"net/http"
	"strings"
)

func BuildAppointmentQueryParams(r *http.Request) *requests.AppointmentQueryParams {
	query := r.URL.Query()
	return &requests.AppointmentQueryParams{
		PatientID: strings.TrimSpace(query.Get(constvars.QueryParamPatientID)),
		Status:    strings.TrimSpace(query.Get(constvars.QueryParamStatus)),
	}
}
