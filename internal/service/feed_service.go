package service

import (
	"context"
	"encoding/json"
	"fmt"

	"course-portal-be/internal/pkg/logger"
	"course-portal-be/internal/websocket"
	"course-portal-be/pkg/events"
	pktNats "course-portal-be/pkg/nats"
)

type IFeedService interface {
	Start() error
}

// feedService consumes the durable progress feed and pushes change
// notifications to the websocket clients of the affected session. Every
// instance of the portal runs one, so changes written on one instance reach
// sockets held by another.
type feedService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

type progressPush struct {
	Type  string                 `json:"type"`
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data"`
}

func NewFeedService(subscriber *pktNats.Subscriber, hub *websocket.Hub, log logger.ILogger) IFeedService {
	return &feedService{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

func (s *feedService) Start() error {
	subjects := map[string]string{
		events.TypeProgressUpdated: "progress-feed-updates",
		events.TypeProgressReset:   "progress-feed-resets",
	}
	for eventType, durable := range subjects {
		subject := fmt.Sprintf("portal.%s", eventType)
		if err := s.subscriber.Subscribe(subject, durable, s.handleEvent); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
	}
	return nil
}

func (s *feedService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	sessionId, _ := payload["session_id"].(string)
	if sessionId == "" {
		// Nothing to route to; ack and move on.
		return nil
	}

	push := progressPush{
		Type: "progress",
		Data: payload,
	}
	switch event.EventType() {
	case events.TypeProgressReset:
		push.Event = "DELETE"
	default:
		push.Event = "UPDATE"
	}

	data, err := json.Marshal(push)
	if err != nil {
		return err
	}

	s.hub.Send(sessionId, data)
	return nil
}
