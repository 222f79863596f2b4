package utils

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyPathID = errors.New("parameter is missing from url path")

// ParseAppointmentID validates an appointment id taken from the url path and
// returns it in canonical lowercase form.
func ParseAppointmentID(param string) (string, error) {
	param = strings.TrimSpace(param)
	if param == "" {
		return "", ErrEmptyPathID
	}

	id, err := uuid.Parse(param)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
