package controllers

import (
	"appointment-service/internal/app/config"
	"appointment-service/internal/app/contracts"
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/dto/requests"
	"appointment-service/internal/pkg/exceptions"
	"appointment-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctrl.findList(w, r, "AppointmentController.FindAll", ctrl.AppointmentUsecase.FindAll, constvars.GetAppointmentsSuccessMessage)
}

func (ctrl *AppointmentController) FindPast(w http.ResponseWriter, r *http.Request) {
	ctrl.findList(w, r, "AppointmentController.FindPast", ctrl.AppointmentUsecase.FindPast, constvars.GetPastAppointmentsSuccessMessage)
}

func (ctrl *AppointmentController) FindUpcoming(w http.ResponseWriter, r *http.Request) {
	ctrl.findList(w, r, "AppointmentController.FindUpcoming", ctrl.AppointmentUsecase.FindUpcoming, constvars.GetUpcomingAppointmentsSuccessMessage)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.FindByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	appointmentID, err := ctrl.appointmentIDParam(r)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindByID invalid appointment id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))

	ctx, cancel := ctrl.usecaseContext(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindByID(ctx, appointmentID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindByID AppointmentUsecase.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		ctrl.buildUsecaseError(w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.CreateAppointment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateAppointmentRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment Failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment Validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.usecaseContext(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment AppointmentUsecase.CreateAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		ctrl.buildUsecaseError(w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.CancelAppointment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	appointmentID, err := ctrl.appointmentIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))

	ctx, cancel := ctrl.usecaseContext(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CancelAppointment(ctx, appointmentID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CancelAppointment AppointmentUsecase.CancelAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.RescheduleAppointment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	appointmentID, err := ctrl.appointmentIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.RescheduleAppointmentRequest)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.RescheduleAppointment Failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.RescheduleAppointment Validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("AppointmentController.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingAppointmentDateKey, request.Date))

	ctx, cancel := ctrl.usecaseContext(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.RescheduleAppointment(ctx, appointmentID, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.RescheduleAppointment AppointmentUsecase.RescheduleAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RescheduleAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.ExportCalendar requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	queryParams := utils.BuildAppointmentQueryParams(r)
	if queryParams.PatientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPatientIDRequired(nil))
		return
	}

	ctrl.Log.Info("AppointmentController.ExportCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, queryParams.PatientID))

	ctx, cancel := ctrl.usecaseContext(r)
	defer cancel()

	content, err := ctrl.AppointmentUsecase.ExportCalendar(ctx, queryParams.PatientID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.ExportCalendar AppointmentUsecase.ExportCalendar error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		ctrl.buildUsecaseError(w, err)
		return
	}

	fileName := constvars.ResourceAppointments + constvars.CalendarExportExtension
	utils.BuildFileResponse(w, constvars.MIMETextCalendar, fileName, content)
}

func (ctrl *AppointmentController) ExportHistory(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.ExportHistory requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	queryParams := utils.BuildAppointmentQueryParams(r)
	if queryParams.PatientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPatientIDRequired(nil))
		return
	}

	ctrl.Log.Info("AppointmentController.ExportHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, queryParams.PatientID))

	ctx, cancel := ctrl.usecaseContext(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.ExportHistory(ctx, queryParams.PatientID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.ExportHistory AppointmentUsecase.ExportHistory error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		ctrl.buildUsecaseError(w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.ExportHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, response.ObjectName))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportHistorySuccessMessage, response)
}
