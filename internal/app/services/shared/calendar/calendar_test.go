package calendar

import (
	"appointment-service/internal/app/models"
	"appointment-service/internal/pkg/constvars"
	"bytes"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAppointmentCalendar(t *testing.T) {
	now := time.Date(2024, time.February, 1, 8, 0, 0, 0, time.Local)
	appointments := []models.Appointment{
		{
			ID:              "timed",
			DoctorName:      "Dr. Rivera",
			DoctorSpecialty: "Cardiology",
			Location:        "Room 4",
			Date:            "Monday, 15 Jan 2024",
			Time:            "10:30 AM",
			Status:          constvars.AppointmentStatusCompleted,
		},
		{
			ID:         "all-day",
			DoctorName: "Dr. Okafor",
			Date:       "Friday, 31 Dec 2099",
			Status:     constvars.AppointmentStatusCancelled,
			Notes:      "bring results",
		},
		{ID: "no-date", DoctorName: "Dr. Chen"},
		{ID: "broken", DoctorName: "Dr. Chen", Date: "not a date"},
	}

	content, count := BuildAppointmentCalendar(appointments, now)
	assert.Equal(t, 2, count)

	cal, err := ical.ParseCalendar(bytes.NewReader(content))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	timed := events[0]
	assert.Equal(t, "timed", timed.Id())
	assert.Equal(t, "Appointment with Dr. Rivera (Cardiology)", timed.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "Room 4", timed.GetProperty(ical.ComponentPropertyLocation).Value)
	start, err := timed.GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, time.January, 15, 10, 30, 0, 0, time.Local)))
	end, err := timed.GetEndAt()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, end.Sub(start))

	allDay := events[1]
	assert.Equal(t, "all-day", allDay.Id())
	assert.Equal(t, string(ical.ObjectStatusCancelled), allDay.GetProperty(ical.ComponentPropertyStatus).Value)
	assert.Equal(t, "bring results", allDay.GetProperty(ical.ComponentPropertyDescription).Value)
	assert.Equal(t, "20991231", allDay.GetProperty(ical.ComponentPropertyDtStart).Value)
}

func TestBuildAppointmentCalendar_Empty(t *testing.T) {
	content, count := BuildAppointmentCalendar(nil, time.Now())
	assert.Zero(t, count)
	assert.Contains(t, string(content), "BEGIN:VCALENDAR")
	assert.Contains(t, string(content), constvars.CalendarProductID)
}
