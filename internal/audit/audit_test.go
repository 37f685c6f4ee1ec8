package audit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/schoolsports/internal/common"
	"github.com/DhavalSuthar-24/schoolsports/internal/testutil"
)

type published struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	msgs []published
	err  error
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, published{subject, data})
	return nil
}

type snapshot struct {
	Status string `json:"status"`
}

func requestContext() context.Context {
	actor := uint(12)
	return common.WithRequestMeta(context.Background(), common.RequestMeta{
		ActorID:   &actor,
		IPAddress: "10.0.0.1",
		RequestID: "req-1",
	})
}

func TestNATSRecorder(t *testing.T) {
	pub := &fakePublisher{}
	r := NewNATSRecorder(pub, "")

	require.NoError(t, r.LogUpdate(requestContext(), "SportsEnrollment", 3, snapshot{"active"}, snapshot{"withdrawn"}))
	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "audit.SportsEnrollment.update", pub.msgs[0].subject)

	var ev Event
	require.NoError(t, json.Unmarshal(pub.msgs[0].data, &ev))
	assert.Equal(t, uint(3), ev.EntityID)
	assert.Equal(t, ActionUpdate, ev.Action)
	assert.JSONEq(t, `{"status":"active"}`, string(ev.OldValues))
	assert.JSONEq(t, `{"status":"withdrawn"}`, string(ev.NewValues))
	require.NotNil(t, ev.Meta.ActorID)
	assert.Equal(t, uint(12), *ev.Meta.ActorID)
	assert.Equal(t, "req-1", ev.Meta.RequestID)

	require.NoError(t, r.LogCreate(context.Background(), "SportsEnrollment", 4, snapshot{"active"}))
	var created Event
	require.NoError(t, json.Unmarshal(pub.msgs[1].data, &created))
	assert.Empty(t, created.OldValues)
	assert.Equal(t, "schools.SportsEnrollment.create", NewNATSRecorder(pub, "schools").Subject("SportsEnrollment", ActionCreate))

	pub.err = errors.New("no responders")
	assert.ErrorIs(t, r.LogCreate(context.Background(), "SportsEnrollment", 5, nil), pub.err)
}

func TestGormRecorder(t *testing.T) {
	db := testutil.NewDB(t, &AuditLog{})
	r := NewGormRecorder(db)

	require.NoError(t, r.LogCreate(requestContext(), "SportsEnrollment", 9, snapshot{"active"}))
	require.NoError(t, r.LogUpdate(context.Background(), "SportsEnrollment", 9, snapshot{"active"}, snapshot{"completed"}))

	var rows []AuditLog
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)

	assert.Equal(t, ActionCreate, rows[0].Action)
	assert.Empty(t, rows[0].OldValues)
	assert.JSONEq(t, `{"status":"active"}`, rows[0].NewValues)
	require.NotNil(t, rows[0].ActorID)
	assert.Equal(t, uint(12), *rows[0].ActorID)
	assert.Equal(t, "10.0.0.1", rows[0].IPAddress)

	assert.Equal(t, ActionUpdate, rows[1].Action)
	assert.JSONEq(t, `{"status":"completed"}`, rows[1].NewValues)
	assert.Nil(t, rows[1].ActorID)
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	assert.NoError(t, r.LogCreate(context.Background(), "x", 1, nil))
	assert.NoError(t, r.LogUpdate(context.Background(), "x", 1, nil, nil))
}
