package routers

import (
	"appointment-service/internal/app/delivery/http/controllers"
	"appointment-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.With(middlewares.BodyLimit).Post("/", appointmentController.CreateAppointment)
	router.Get("/past", appointmentController.FindPast)
	router.Get("/upcoming", appointmentController.FindUpcoming)
	router.Get("/calendar.ics", appointmentController.ExportCalendar)
	router.Post("/history/export", appointmentController.ExportHistory)
	router.Get("/{appointmentID}", appointmentController.FindByID)
	router.Post("/{appointmentID}/cancel", appointmentController.CancelAppointment)
	router.With(middlewares.BodyLimit).Put("/{appointmentID}/reschedule", appointmentController.RescheduleAppointment)
}
