package controllers

import (
	"appointment-service/internal/app/config"
	"appointment-service/internal/app/contracts"
	"appointment-service/internal/app/models"
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/dto/responses"
	"appointment-service/internal/pkg/exceptions"
	"appointment-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// PingFunc reports whether a backing service answers.
type PingFunc func(ctx context.Context) error

type HealthController struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	MongoPing       PingFunc
	InternalConfig  *config.InternalConfig
}

func NewHealthController(logger *zap.Logger, redisRepository contracts.RedisRepository, mongoPing PingFunc, internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		Log:             logger,
		RedisRepository: redisRepository,
		MongoPing:       mongoPing,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := ctrl.RedisRepository.Ping(ctx); err != nil {
		ctrl.Log.Error("HealthController.Check redis ping failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, "redis unavailable"))
		return
	}

	if ctrl.MongoPing != nil {
		if err := ctrl.MongoPing(ctx); err != nil {
			ctrl.Log.Error("HealthController.Check mongo ping failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err))
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, "mongodb unavailable"))
			return
		}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.HealthCheck{
		Status:              constvars.ResponseSuccess,
		Version:             ctrl.InternalConfig.App.Version,
		LastCompletionSweep: ctrl.lastCompletionSweep(ctx, utils.GetRequestID(r.Context())),
	})
}

// lastCompletionSweep is informational; a missing or unreadable record does
// not make the service unhealthy.
func (ctrl *HealthController) lastCompletionSweep(ctx context.Context, requestID string) *models.CompletionSweep {
	stored, err := ctrl.RedisRepository.Get(ctx, constvars.CompletionWorkerLastRunKey)
	if err != nil || stored == "" {
		if err != nil {
			ctrl.Log.Warn("HealthController.Check error reading last completion sweep",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err))
		}
		return nil
	}

	var sweep models.CompletionSweep
	if err := json.Unmarshal([]byte(stored), &sweep); err != nil {
		ctrl.Log.Warn("HealthController.Check error decoding last completion sweep",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		return nil
	}
	return &sweep
}
