package eventpublisher

import (
	"appointment-service/internal/app/contracts"
	"appointment-service/internal/app/models"
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/exceptions"
	"appointment-service/internal/pkg/utils"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	eventPublisherInstance contracts.EventPublisher
	onceEventPublisher     sync.Once
)

// Channel is the part of an AMQP channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type rabbitMQPublisher struct {
	Channel   Channel
	QueueName string
	Log       *zap.Logger
	mu        sync.Mutex
}

func NewRabbitMQPublisher(connection *amqp091.Connection, queueName string, logger *zap.Logger) (contracts.EventPublisher, error) {
	var err error
	onceEventPublisher.Do(func() {
		var channel *amqp091.Channel
		channel, err = connection.Channel()
		if err != nil {
			err = exceptions.ErrRabbitMQOpenChannel(err)
			return
		}
		eventPublisherInstance = newRabbitMQPublisher(channel, queueName, logger)
	})
	return eventPublisherInstance, err
}

func newRabbitMQPublisher(channel Channel, queueName string, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		Channel:   channel,
		QueueName: queueName,
		Log:       logger,
	}
}

func (p *rabbitMQPublisher) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("rabbitMQPublisher.PublishAppointmentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
		zap.String(constvars.LoggingQueueNameKey, p.QueueName),
	)

	body, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("rabbitMQPublisher.PublishAppointmentEvent error marshaling event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.Channel.PublishWithContext(ctx, "", p.QueueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.AppointmentID,
		Type:         event.Event,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		p.Log.Error("rabbitMQPublisher.PublishAppointmentEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, p.QueueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}

	p.Log.Info("rabbitMQPublisher.PublishAppointmentEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}
