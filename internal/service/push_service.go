package service

import (
	"context"
	"fmt"
	"time"

	"mindshift-be/internal/dto"
	"mindshift-be/internal/pkg/logger"
	"mindshift-be/pkg/events"
	pktNats "mindshift-be/pkg/nats"

	"github.com/google/uuid"
)

// PushDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type PushDelivery interface {
	Send(userID uuid.UUID, push dto.PushMessage)
}

// PushService translates domain events from the bus into live pushes for
// the connected user.
type PushService struct {
	subscriber *pktNats.Subscriber
	delivery   PushDelivery
	logger     logger.ILogger
}

func NewPushService(sub *pktNats.Subscriber, delivery PushDelivery, log logger.ILogger) *PushService {
	return &PushService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *PushService) Start() {
	err := s.subscriber.Subscribe("events.>", "push-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("PushService", "Failed to start push subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("PushService", "Push service started, listening to events.>", nil)
}

func (s *PushService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	rawUserId, _ := payload["user_id"].(string)
	userId, err := uuid.Parse(rawUserId)
	if err != nil {
		// Event without a routable user. Nothing to deliver.
		return nil
	}

	push, ok := s.buildPush(event.EventType(), payload)
	if !ok {
		return nil
	}

	s.delivery.Send(userId, push)
	return nil
}

func (s *PushService) buildPush(eventType string, payload map[string]interface{}) (dto.PushMessage, bool) {
	base := dto.PushMessage{
		Id:        uuid.New(),
		Type:      eventType,
		Metadata:  payload,
		CreatedAt: time.Now(),
	}

	switch eventType {
	case "ARCHETYPE_DETECTED":
		emoji, _ := payload["emoji"].(string)
		message, _ := payload["message"].(string)
		base.Title = fmt.Sprintf("%s Check-in result", emoji)
		base.Message = message
		return base, true

	case "INTERVENTION_MASTERED":
		interventionId, _ := payload["intervention_id"].(string)
		base.Title = "🏆 Intervention mastered"
		base.Message = fmt.Sprintf("'%s' now works for you every time. Keep it in your toolkit!", interventionId)
		return base, true

	default:
		// FEEDBACK_RECORDED and anything future stays server-side.
		return dto.PushMessage{}, false
	}
}
