package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/streadway/amqp"
)

type fakeAcknowledger struct {
	acks     int
	nacks    int
	requeued bool
}

func (f *fakeAcknowledger) Ack(_ uint64, _ bool) error {
	f.acks++

	return nil
}

func (f *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	f.nacks++
	f.requeued = requeue

	return nil
}

func (f *fakeAcknowledger) Reject(_ uint64, requeue bool) error {
	f.nacks++
	f.requeued = requeue

	return nil
}

type fakeService struct {
	records []map[string]any
	err     error
}

func (f *fakeService) ProcessAuditRecord(_ context.Context, record map[string]any) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)

	return nil
}

func newTestConsumer(svc *fakeService) *Consumer {
	return &Consumer{
		service: svc,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func TestProcessMessage_AcksAfterPersist(t *testing.T) {
	svc := &fakeService{}
	c := newTestConsumer(svc)
	ack := &fakeAcknowledger{}

	msg := amqp.Delivery{
		Acknowledger: ack,
		DeliveryTag:  1,
		Body:         []byte(`{"id":"4b4f6c65-0000-0000-0000-000000000001","status":"pending"}`),
	}

	if err := c.processMessage(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(svc.records) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(svc.records))
	}
	if svc.records[0]["status"] != "pending" {
		t.Errorf("expected record to be persisted verbatim, got %+v", svc.records[0])
	}
	if ack.acks != 1 {
		t.Errorf("expected exactly one ack, got %d", ack.acks)
	}
	if ack.nacks != 0 {
		t.Errorf("expected no nacks, got %d", ack.nacks)
	}
}

func TestProcessMessage_PersistFailureWithholdsAck(t *testing.T) {
	svc := &fakeService{err: errors.New("store down")}
	c := newTestConsumer(svc)
	ack := &fakeAcknowledger{}

	msg := amqp.Delivery{
		Acknowledger: ack,
		DeliveryTag:  2,
		Body:         []byte(`{"id":"x"}`),
	}

	if err := c.processMessage(context.Background(), msg); err == nil {
		t.Fatal("expected the persistence error to be returned")
	}

	if ack.acks != 0 {
		t.Errorf("expected no ack on persistence failure, got %d", ack.acks)
	}
	if ack.nacks != 1 {
		t.Fatalf("expected one nack, got %d", ack.nacks)
	}
	if !ack.requeued {
		t.Error("expected the delivery to be requeued for redelivery")
	}
}

func TestProcessMessage_MalformedPayloadIsRejected(t *testing.T) {
	svc := &fakeService{}
	c := newTestConsumer(svc)
	ack := &fakeAcknowledger{}

	msg := amqp.Delivery{
		Acknowledger: ack,
		DeliveryTag:  3,
		Body:         []byte(`not json`),
	}

	if err := c.processMessage(context.Background(), msg); err == nil {
		t.Fatal("expected an unmarshal error")
	}

	if len(svc.records) != 0 {
		t.Error("malformed payload must not be persisted")
	}
	if ack.nacks != 1 {
		t.Fatalf("expected one nack, got %d", ack.nacks)
	}
	if ack.requeued {
		t.Error("poison message must not be requeued")
	}
}
