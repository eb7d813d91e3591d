package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/erp/ledger/internal/infrastructure/event"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	declareErr error
	publishErr error
	messages   []published
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.messages = append(f.messages, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func testMessagingConfig() config.MessagingConfig {
	return config.MessagingConfig{Enabled: true, Exchange: "erp.ledger", RoutingKey: "ledger"}
}

func newTestRelay(t *testing.T, ch *fakeChannel) *AMQPRelay {
	t.Helper()
	s := event.NewEventSerializer()
	event.RegisterLedgerEvents(s)
	relay, err := newAMQPRelay(ch, testMessagingConfig(), s, zap.NewNop())
	require.NoError(t, err)
	return relay
}

func TestAMQPRelay_DeclaresTopicExchange(t *testing.T) {
	ch := &fakeChannel{}
	newTestRelay(t, ch)
	assert.Equal(t, []string{"erp.ledger:topic"}, ch.declared)
}

func TestAMQPRelay_DeclareFailure(t *testing.T) {
	ch := &fakeChannel{declareErr: errors.New("access refused")}
	_, err := newAMQPRelay(ch, testMessagingConfig(), event.NewEventSerializer(), nil)
	assert.ErrorContains(t, err, "failed to declare exchange erp.ledger")
}

func TestAMQPRelay_Handle(t *testing.T) {
	ch := &fakeChannel{}
	relay := newTestRelay(t, ch)
	tenantID := uuid.New()
	ev := &finance.AdvanceChargeDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(finance.EventTypeAdvanceChargeDeleted, finance.AggregateTypeAdvanceCharge, uuid.New(), tenantID),
		ReceiptNumber:   "YSK202401150002",
	}

	require.NoError(t, relay.Handle(context.Background(), ev))
	require.Len(t, ch.messages, 1)

	got := ch.messages[0]
	assert.Equal(t, "erp.ledger", got.exchange)
	assert.Equal(t, "ledger.AdvanceChargeDeleted", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, ev.EventID().String(), got.msg.MessageId)
	assert.Equal(t, tenantID.String(), got.msg.Headers["tenant_id"])

	var env event.Envelope
	require.NoError(t, json.Unmarshal(got.msg.Body, &env))
	assert.Equal(t, finance.EventTypeAdvanceChargeDeleted, env.EventType)
	assert.Contains(t, string(env.Payload), "YSK202401150002")
}

func TestAMQPRelay_PublishFailure(t *testing.T) {
	ch := &fakeChannel{}
	relay := newTestRelay(t, ch)
	ch.publishErr = errors.New("channel closed")
	ev := &finance.AdvanceChargeDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(finance.EventTypeAdvanceChargeDeleted, finance.AggregateTypeAdvanceCharge, uuid.New(), uuid.New()),
	}

	err := relay.Handle(context.Background(), ev)
	assert.ErrorContains(t, err, "failed to publish AdvanceChargeDeleted")
}

func TestAMQPRelay_RoutingKeyAndClose(t *testing.T) {
	ch := &fakeChannel{}
	relay := newTestRelay(t, ch)
	assert.Nil(t, relay.EventTypes())

	relay.routingKey = ""
	assert.Equal(t, "MemberCreated", relay.RoutingKey("MemberCreated"))

	require.NoError(t, relay.Close())
	assert.True(t, ch.closed)
}
