package team

import (
	"context"
	"fmt"
	"slices"

	"github.com/DhavalSuthar-24/schoolsports/internal/models"
	"github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"
	"gorm.io/gorm"
)

// MembershipSource lists the students whose active enrollment points at a team.
// It is the authority for team membership; Team.Members only caches it.
type MembershipSource interface {
	ActiveStudentIDs(ctx context.Context, teamID uint) ([]uint, error)
	SourceWithTx(tx *gorm.DB) MembershipSource
}

// Roster keeps Team.Members in lockstep with enrollment changes. Callers pass the
// transaction of the enrollment mutation through WithTx so both writes commit together.
type Roster struct {
	teams  TeamRepository
	source MembershipSource
}

func NewRoster(teams TeamRepository, source MembershipSource) *Roster {
	return &Roster{teams: teams, source: source}
}

// WithTx returns a roster whose writes run on tx.
func (r *Roster) WithTx(tx *gorm.DB) *Roster {
	return &Roster{teams: r.teams.WithTx(tx), source: r.source.SourceWithTx(tx)}
}

// AddMember puts studentID on the team's member list.
func (r *Roster) AddMember(ctx context.Context, teamID, studentID uint) error {
	return r.mutate(ctx, "AddMember", teamID, func(m models.IDSet) models.IDSet { return m.Add(studentID) })
}

// RemoveMember takes studentID off the team's member list.
func (r *Roster) RemoveMember(ctx context.Context, teamID, studentID uint) error {
	return r.mutate(ctx, "RemoveMember", teamID, func(m models.IDSet) models.IDSet { return m.Remove(studentID) })
}

func (r *Roster) mutate(ctx context.Context, op string, teamID uint, fn func(models.IDSet) models.IDSet) error {
	t, err := r.teams.GetTeamByIDForUpdate(ctx, teamID)
	if err != nil {
		return fmt.Errorf("load team %d: %w", teamID, err)
	}
	if t == nil {
		return apperrors.NotFound("team", op, "team %d not found", teamID)
	}
	before := len(t.Members)
	members := fn(slices.Clone(t.Members))
	if len(members) == before {
		return nil
	}
	if err := r.teams.SetMembers(ctx, teamID, members); err != nil {
		return fmt.Errorf("save members of team %d: %w", teamID, err)
	}
	return nil
}

// Members derives the roster of teamID from active enrollments.
func (r *Roster) Members(ctx context.Context, teamID uint) (models.IDSet, error) {
	ids, err := r.source.ActiveStudentIDs(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return models.NewIDSet(ids...), nil
}

// Reconcile overwrites the cached member list of teamID with the derived roster
// and returns the updated team.
func (r *Roster) Reconcile(ctx context.Context, teamID uint) (*Team, error) {
	t, err := r.teams.GetTeamByIDForUpdate(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperrors.NotFound("team", "Reconcile", "team %d not found", teamID)
	}
	members, err := r.Members(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !slices.Equal(t.Members, members) {
		if err := r.teams.SetMembers(ctx, teamID, members); err != nil {
			return nil, err
		}
		t.Members = members
	}
	return t, nil
}
