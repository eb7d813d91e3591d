package event

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
)

// Envelope is the wire form of a domain event sent to other systems
type Envelope struct {
	EventID       uuid.UUID       `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   uuid.UUID       `json:"aggregate_id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// EventSerializer converts domain events to and from JSON envelopes.
// Only registered event types can be decoded.
type EventSerializer struct {
	mu       sync.RWMutex
	registry map[string]reflect.Type
}

// NewEventSerializer creates an empty serializer
func NewEventSerializer() *EventSerializer {
	return &EventSerializer{registry: make(map[string]reflect.Type)}
}

// Register binds an event type name to the Go type of instance
func (s *EventSerializer) Register(eventType string, instance shared.DomainEvent) {
	t := reflect.TypeOf(instance)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.mu.Lock()
	s.registry[eventType] = t
	s.mu.Unlock()
}

// Serialize encodes the event body as JSON
func (s *EventSerializer) Serialize(ev shared.DomainEvent) ([]byte, error) {
	return json.Marshal(ev)
}

// Deserialize decodes data into a new instance of the type registered for eventType
func (s *EventSerializer) Deserialize(eventType string, data []byte) (shared.DomainEvent, error) {
	s.mu.RLock()
	t, ok := s.registry[eventType]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	ptr := reflect.New(t).Interface()
	if err := json.Unmarshal(data, ptr); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event %s: %w", eventType, err)
	}
	ev, ok := ptr.(shared.DomainEvent)
	if !ok {
		return nil, fmt.Errorf("type registered for %s does not implement DomainEvent", eventType)
	}
	return ev, nil
}

// Envelope wraps the event and its serialized body
func (s *EventSerializer) Envelope(ev shared.DomainEvent) (Envelope, error) {
	payload, err := s.Serialize(ev)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to serialize event %s: %w", ev.EventType(), err)
	}
	return Envelope{
		EventID:       ev.EventID(),
		EventType:     ev.EventType(),
		AggregateType: ev.AggregateType(),
		AggregateID:   ev.AggregateID(),
		TenantID:      ev.TenantID(),
		OccurredAt:    ev.OccurredAt().UTC(),
		Payload:       payload,
	}, nil
}

// Open decodes the payload of an envelope
func (s *EventSerializer) Open(env Envelope) (shared.DomainEvent, error) {
	return s.Deserialize(env.EventType, env.Payload)
}

// IsRegistered reports whether eventType can be decoded
func (s *EventSerializer) IsRegistered(eventType string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.registry[eventType]
	return ok
}

// RegisteredTypes returns the registered event type names, sorted
func (s *EventSerializer) RegisteredTypes() []string {
	s.mu.RLock()
	types := make([]string, 0, len(s.registry))
	for t := range s.registry {
		types = append(types, t)
	}
	s.mu.RUnlock()
	sort.Strings(types)
	return types
}
