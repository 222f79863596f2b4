package contracts

import (
	"appointment-service/internal/app/models"
	"context"
)

type EventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error
}
