package routers

import (
	"appointment-service/internal/app/config"
	"appointment-service/internal/app/delivery/http/controllers"
	"appointment-service/internal/app/delivery/http/middlewares"
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/exceptions"
	"appointment-service/internal/pkg/utils"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	healthController *controllers.HealthController,
) {

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		// Content-Disposition carries the calendar file name.
		ExposedHeaders: []string{constvars.HeaderXRequestID, constvars.HeaderContentDisposition},
		MaxAge:         300,
	}))

	router.Use(
		middlewares.RequestIDMiddleware,
		middlewares.Logging,
		middlewares.RateLimiter(),
		middlewares.ErrorHandler,
	)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrRouteNotFound(r.Method, r.URL.Path))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrMethodNotAllowed(r.Method, r.URL.Path))
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", healthController.Check)

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})
		})
	})
}
