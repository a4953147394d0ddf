package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"buildmat-dispatch/internal/config"
	"buildmat-dispatch/internal/dispatch/lifecycle"
	pkgmqtt "buildmat-dispatch/pkg/mqtt"
)

// StatusEvent is broadcast whenever an order's canonical status changes, so
// the customer and driver apps can refresh without polling.
type StatusEvent struct {
	OrderID        uuid.UUID             `json:"order_id"`
	PreviousStatus lifecycle.OrderStatus `json:"previous_status"`
	NewStatus      lifecycle.OrderStatus `json:"new_status"`
	ChangedBy      string                `json:"changed_by"`
	OccurredAt     time.Time             `json:"occurred_at"`
}

// Publisher broadcasts status events over MQTT. A nil *Publisher is a
// valid no-op, used when the broker is disabled in config.
type Publisher struct {
	client      *pkgmqtt.Client
	topicPrefix string
}

// NewPublisher connects to the broker described in cfg. Returns nil, nil
// when MQTT is disabled.
func NewPublisher(cfg *config.MQTTConfig) (*Publisher, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}
	if cfg.Broker == "" {
		return nil, errors.New("mqtt broker address is not configured")
	}

	client := pkgmqtt.NewClient(&pkgmqtt.Config{
		Broker:               cfg.Broker,
		ClientID:             cfg.ClientID,
		Username:             cfg.Username,
		Password:             cfg.Password,
		CleanSession:         true,
		KeepAlive:            30,
		ConnectTimeout:       10,
		AutoReconnect:        true,
		MaxReconnectInterval: time.Minute,
	})
	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect status publisher: %w", err)
	}

	return &Publisher{
		client:      client,
		topicPrefix: cfg.TopicPrefix,
	}, nil
}

// PublishStatusChange sends the event on <prefix>/orders/<id>/status.
func (p *Publisher) PublishStatusChange(ev StatusEvent) error {
	if p == nil {
		return nil
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode status event: %w", err)
	}

	topic := fmt.Sprintf("%s/orders/%s/status", p.topicPrefix, ev.OrderID)
	if err := p.client.Publish(topic, 1, false, payload); err != nil {
		return fmt.Errorf("failed to publish status event: %w", err)
	}

	zap.L().Debug("status event published",
		zap.String("topic", topic),
		zap.String("new_status", string(ev.NewStatus)),
	)
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p != nil && p.client != nil {
		p.client.Disconnect()
	}
}
