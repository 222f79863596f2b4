package appointments

import (
	"appointment-service/internal/app/config"
	"appointment-service/internal/app/contracts"
	"appointment-service/internal/app/models"
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker periodically marks appointments whose day has passed as completed.
type Worker struct {
	log                *zap.Logger
	cfg                *config.InternalConfig
	locker             contracts.LockerService
	redisRepo          contracts.RedisRepository
	appointmentUsecase contracts.AppointmentUsecase
	cron               *cron.Cron
	runCtx             context.Context
	cancel             context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, redisRepo contracts.RedisRepository, appointmentUsecase contracts.AppointmentUsecase) *Worker {
	return &Worker{
		log:                log,
		cfg:                cfg,
		locker:             lockerSvc,
		redisRepo:          redisRepo,
		appointmentUsecase: appointmentUsecase,
	}
}

// Start schedules the sweep. An invalid cron spec falls back to hourly.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.CompletionWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("appointments.worker: failed to schedule with provided cron spec; falling back",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.String("fallback", constvars.CompletionWorkerFallbackSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(constvars.CompletionWorkerFallbackSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels a running sweep and waits for it to return. Calling it more
// than once is safe.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) lockTTL() time.Duration {
	if w.cfg.App.CompletionWorkerLockTTLInSeconds <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(w.cfg.App.CompletionWorkerLockTTLInSeconds) * time.Second
}

func (w *Worker) runOnce(ctx context.Context) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	requestID := utils.GetRequestID(ctx)

	ttl := w.lockTTL()
	acquired, token, err := w.locker.TryLock(ctx, constvars.CompletionWorkerLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("appointments.worker: leader lock attempt failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		w.log.Info("appointments.worker: leader lock not acquired; another instance is running",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}
	defer w.locker.Unlock(context.WithoutCancel(ctx), constvars.CompletionWorkerLeaderLockKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.CompletionWorkerLeaderLockKey, token, ttl); err != nil {
					w.log.Warn("appointments.worker: failed to refresh leader lock TTL",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.Error(err),
					)
				}
			}
		}
	}()

	startedAt := time.Now()
	completed, err := w.appointmentUsecase.CompletePastAppointments(ctx)
	if err != nil {
		w.log.Warn("appointments.worker: sweep failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	sweep := models.CompletionSweep{
		RequestID: requestID,
		StartedAt: startedAt.UTC(),
		Duration:  time.Since(startedAt).String(),
		Completed: completed,
	}
	w.log.Info("appointments.worker: sweep finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCompletedCountKey, completed),
		zap.String(constvars.LoggingDurationKey, sweep.Duration),
	)

	err = w.redisRepo.Set(ctx, constvars.CompletionWorkerLastRunKey, sweep, constvars.CompletionWorkerLastRunTTL)
	if err != nil {
		w.log.Warn("appointments.worker: failed to record sweep",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
