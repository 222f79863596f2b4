// Package calendar renders appointments as an iCalendar document.
package calendar

import (
	"appointment-service/internal/app/models"
	"appointment-service/internal/pkg/appointmentdate"
	"appointment-service/internal/pkg/constvars"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

// BuildAppointmentCalendar serializes appointments into a VCALENDAR with one
// VEVENT per appointment. Appointments without a resolvable date are skipped,
// an epoch date would only put them in 1970. Appointments with a time become
// timed events, the rest are all-day events.
func BuildAppointmentCalendar(appointments []models.Appointment, now time.Time) ([]byte, int) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(constvars.CalendarProductID)

	count := 0
	for _, appointment := range appointments {
		day, source := appointmentdate.ParseResult(appointment.Date)
		if source == appointmentdate.SourceEpoch {
			continue
		}

		event := cal.AddEvent(appointment.ID)
		event.SetDtStampTime(now)
		event.SetSummary(summary(appointment))
		if appointment.Location != "" {
			event.SetLocation(appointment.Location)
		}
		if appointment.Notes != "" {
			event.SetDescription(appointment.Notes)
		}
		event.SetStatus(eventStatus(appointment.Status))

		if start, ok := startTime(day, appointment.Time); ok {
			event.SetStartAt(start)
			event.SetEndAt(start.Add(constvars.AppointmentDefaultDurationInMinutes * time.Minute))
		} else {
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		}
		count++
	}

	return []byte(cal.Serialize()), count
}

func summary(appointment models.Appointment) string {
	if appointment.DoctorSpecialty == "" {
		return fmt.Sprintf("Appointment with %s", appointment.DoctorName)
	}
	return fmt.Sprintf("Appointment with %s (%s)", appointment.DoctorName, appointment.DoctorSpecialty)
}

func startTime(day time.Time, clock string) (time.Time, bool) {
	if strings.TrimSpace(clock) == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(constvars.AppointmentTimeLayout, strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.Local), true
}

func eventStatus(status constvars.AppointmentStatus) ical.ObjectStatus {
	if status == constvars.AppointmentStatusCancelled {
		return ical.ObjectStatusCancelled
	}
	return ical.ObjectStatusConfirmed
}
