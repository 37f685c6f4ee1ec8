package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Publisher is the part of *nats.Conn the NATS recorder needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSRecorder publishes audit entries as JSON on "<prefix>.<entity>.<action>".
type NATSRecorder struct {
	pub    Publisher
	prefix string
}

func NewNATSRecorder(pub Publisher, prefix string) *NATSRecorder {
	if prefix == "" {
		prefix = "audit"
	}
	return &NATSRecorder{pub: pub, prefix: prefix}
}

// ConnectNATS dials url and returns a recorder on the connection.
func ConnectNATS(url, prefix string) (*NATSRecorder, *nats.Conn, error) {
	conn, err := nats.Connect(url, nats.Name("schoolsports-audit"))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return NewNATSRecorder(conn, prefix), conn, nil
}

func (r *NATSRecorder) LogCreate(ctx context.Context, entity string, id uint, snapshot any) error {
	return r.publish(ctx, entity, id, ActionCreate, nil, snapshot)
}

func (r *NATSRecorder) LogUpdate(ctx context.Context, entity string, id uint, oldSnapshot, newSnapshot any) error {
	return r.publish(ctx, entity, id, ActionUpdate, oldSnapshot, newSnapshot)
}

// Subject returns the subject an entry for entity/action is published on.
func (r *NATSRecorder) Subject(entity string, action Action) string {
	return fmt.Sprintf("%s.%s.%s", r.prefix, entity, action)
}

func (r *NATSRecorder) publish(ctx context.Context, entity string, id uint, action Action, oldSnapshot, newSnapshot any) error {
	ev, err := newEvent(ctx, entity, id, action, oldSnapshot, newSnapshot)
	if err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	if err := r.pub.Publish(r.Subject(entity, action), data); err != nil {
		return fmt.Errorf("publish audit event: %w", err)
	}
	return nil
}
