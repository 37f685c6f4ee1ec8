// Package audit records create/update events of sports entities.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DhavalSuthar-24/schoolsports/internal/common"
	"gorm.io/gorm"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
)

// Recorder is the audit-trail collaborator. Callers decide what a failure means;
// the sports services log and ignore it.
type Recorder interface {
	LogCreate(ctx context.Context, entity string, id uint, snapshot any) error
	LogUpdate(ctx context.Context, entity string, id uint, oldSnapshot, newSnapshot any) error
}

// Event is the serialised form of one audit entry.
type Event struct {
	Entity    string             `json:"entity"`
	EntityID  uint               `json:"entityId"`
	Action    Action             `json:"action"`
	OldValues json.RawMessage    `json:"oldValues,omitempty"`
	NewValues json.RawMessage    `json:"newValues,omitempty"`
	Meta      common.RequestMeta `json:"meta"`
}

func newEvent(ctx context.Context, entity string, id uint, action Action, oldSnapshot, newSnapshot any) (Event, error) {
	ev := Event{Entity: entity, EntityID: id, Action: action, Meta: common.RequestMetaFrom(ctx)}
	var err error
	if oldSnapshot != nil {
		if ev.OldValues, err = json.Marshal(oldSnapshot); err != nil {
			return ev, fmt.Errorf("marshal old snapshot: %w", err)
		}
	}
	if newSnapshot != nil {
		if ev.NewValues, err = json.Marshal(newSnapshot); err != nil {
			return ev, fmt.Errorf("marshal new snapshot: %w", err)
		}
	}
	return ev, nil
}

// AuditLog is one row of the audit table.
type AuditLog struct {
	gorm.Model
	Entity    string `json:"entity" gorm:"index;not null"`
	EntityID  uint   `json:"entity_id" gorm:"index;not null"`
	Action    Action `json:"action" gorm:"not null"`
	OldValues string `json:"old_values,omitempty" gorm:"type:text"`
	NewValues string `json:"new_values,omitempty" gorm:"type:text"`
	ActorID   *uint  `json:"actor_id,omitempty" gorm:"index"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// GormRecorder writes audit entries to the audit_logs table.
type GormRecorder struct {
	db *gorm.DB
}

func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

func (r *GormRecorder) LogCreate(ctx context.Context, entity string, id uint, snapshot any) error {
	return r.write(ctx, entity, id, ActionCreate, nil, snapshot)
}

func (r *GormRecorder) LogUpdate(ctx context.Context, entity string, id uint, oldSnapshot, newSnapshot any) error {
	return r.write(ctx, entity, id, ActionUpdate, oldSnapshot, newSnapshot)
}

func (r *GormRecorder) write(ctx context.Context, entity string, id uint, action Action, oldSnapshot, newSnapshot any) error {
	ev, err := newEvent(ctx, entity, id, action, oldSnapshot, newSnapshot)
	if err != nil {
		return err
	}
	row := AuditLog{
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Action:    ev.Action,
		OldValues: string(ev.OldValues),
		NewValues: string(ev.NewValues),
		ActorID:   ev.Meta.ActorID,
		IPAddress: ev.Meta.IPAddress,
		UserAgent: ev.Meta.UserAgent,
		RequestID: ev.Meta.RequestID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// Nop discards every entry.
type Nop struct{}

func (Nop) LogCreate(context.Context, string, uint, any) error       { return nil }
func (Nop) LogUpdate(context.Context, string, uint, any, any) error { return nil }
