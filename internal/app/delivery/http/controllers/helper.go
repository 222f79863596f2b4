package controllers

import (
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/dto/requests"
	"appointment-service/internal/pkg/dto/responses"
	"appointment-service/internal/pkg/exceptions"
	"appointment-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type listFunc func(ctx context.Context, queryParams *requests.AppointmentQueryParams) ([]responses.Appointment, error)

func (ctrl *AppointmentController) findList(w http.ResponseWriter, r *http.Request, caller string, find listFunc, successMessage string) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error(caller + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	queryParams := utils.BuildAppointmentQueryParams(r)
	ctrl.Log.Info(caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams))

	if queryParams.PatientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPatientIDRequired(nil))
		return
	}

	ctx, cancel := ctrl.usecaseContext(r)
	defer cancel()

	response, err := find(ctx, queryParams)
	if err != nil {
		ctrl.Log.Error(caller+" usecase error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		ctrl.buildUsecaseError(w, err)
		return
	}

	ctrl.Log.Info(caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, response)
}

func (ctrl *AppointmentController) usecaseContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(utils.DetachedContext(r.Context()), timeout)
}

func (ctrl *AppointmentController) appointmentIDParam(r *http.Request) (string, error) {
	appointmentID, err := utils.ParseAppointmentID(chi.URLParam(r, constvars.URLParamAppointmentID))
	if err != nil {
		return "", exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID)
	}
	return appointmentID, nil
}

func (ctrl *AppointmentController) buildUsecaseError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
