package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/tokengate/ticketing-service/internal/events"
	"github.com/tokengate/ticketing-service/internal/persistence"
)

// NotificationService relays domain events to a Redis channel so live
// dashboards (attendance counters, gate monitors) can subscribe without
// touching the database.
type NotificationService struct {
	dispatcher events.Dispatcher
	redis      *persistence.Redis
	channel    string
	logger     *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(dispatcher events.Dispatcher, redis *persistence.Redis, channel string, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, redis: redis, channel: channel, logger: logger}
}

// RegisterHandlers subscribes the relay to all lifecycle events.
func (s *NotificationService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventTicketMinted,
		events.EventTicketTransferred,
		events.EventTicketCheckedIn,
		events.EventTicketStatusSet,
	} {
		s.dispatcher.Subscribe(eventType, s.relay)
	}
}

func (s *NotificationService) relay(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("marshal event", zap.Error(err))
		return nil
	}
	if err := s.redis.Publish(ctx, s.channel, payload); err != nil {
		// relay is best-effort; the transactional audit trail is authoritative
		s.logger.Warn("publish event to redis", zap.String("type", string(event.Type)), zap.Error(err))
	}
	return nil
}
