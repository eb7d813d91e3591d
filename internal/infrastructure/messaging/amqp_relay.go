// Package messaging relays ledger events to external consumers over AMQP.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/erp/ledger/internal/infrastructure/event"
	"github.com/erp/ledger/internal/infrastructure/logger"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// publishChannel is the part of *amqp.Channel the relay uses
type publishChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPRelay publishes every domain event it receives as a JSON envelope
// to a durable topic exchange. The routing key is "<prefix>.<event type>".
type AMQPRelay struct {
	conn       *amqp.Connection
	mu         sync.Mutex
	channel    publishChannel
	exchange   string
	routingKey string
	serializer *event.EventSerializer
	logger     *zap.Logger
}

// DialAMQPRelay connects to the broker and declares the exchange
func DialAMQPRelay(cfg config.MessagingConfig, serializer *event.EventSerializer, log *zap.Logger) (*AMQPRelay, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial AMQP broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}

	relay, err := newAMQPRelay(ch, cfg, serializer, log)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	relay.conn = conn
	return relay, nil
}

func newAMQPRelay(ch publishChannel, cfg config.MessagingConfig, serializer *event.EventSerializer, log *zap.Logger) (*AMQPRelay, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}
	return &AMQPRelay{
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		serializer: serializer,
		logger:     log,
	}, nil
}

// EventTypes returns nil so the relay receives every event
func (r *AMQPRelay) EventTypes() []string {
	return nil
}

// Handle publishes the event as a persistent message
func (r *AMQPRelay) Handle(ctx context.Context, ev shared.DomainEvent) error {
	env, err := r.serializer.Envelope(ev)
	if err != nil {
		return err
	}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	key := r.RoutingKey(ev.EventType())
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	r.mu.Lock()
	err = r.channel.PublishWithContext(pubCtx, r.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    env.EventID.String(),
		Type:         env.EventType,
		Timestamp:    env.OccurredAt,
		Headers: amqp.Table{
			"tenant_id":      env.TenantID.String(),
			"aggregate_type": env.AggregateType,
		},
		Body: body,
	})
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", ev.EventType(), err)
	}

	logger.L(ctx).Debug("ledger event relayed",
		zap.String("event_type", env.EventType),
		zap.String("event_id", env.EventID.String()),
		zap.String("exchange", r.exchange),
		zap.String("routing_key", key),
	)
	return nil
}

// RoutingKey returns the routing key used for eventType
func (r *AMQPRelay) RoutingKey(eventType string) string {
	if r.routingKey == "" {
		return eventType
	}
	return r.routingKey + "." + eventType
}

// Close closes the channel and the connection
func (r *AMQPRelay) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	if r.channel != nil {
		if err := r.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ shared.EventHandler = (*AMQPRelay)(nil)
