package tournament

import (
	"cmp"
	"context"
	"slices"

	"github.com/DhavalSuthar-24/schoolsports/internal/metrics"
	"github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MatchResult is the outcome recorded for a scheduled match. Nil fields leave the
// stored value unchanged.
type MatchResult struct {
	Score1   *string `json:"score1"`
	Score2   *string `json:"score2"`
	WinnerID *uint   `json:"winner_id"`
	Remarks  *string `json:"remarks"`
}

const (
	KindTeam        = "team"
	KindParticipant = "participant"
)

// Tally is the win/loss/draw record of one team or participant in a tournament.
type Tally struct {
	ID            uint   `json:"id"`
	Kind          string `json:"kind"`
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
}

// RecordMatchResult merges result into match matchID of the schedule. A winner must
// be one of the match's two sides. Other matches are left untouched.
func (s *Scheduler) RecordMatchResult(ctx context.Context, tournamentID uint, matchID string, result MatchResult) (*Match, error) {
	const op = "RecordMatchResult"
	var recorded Match
	_, err := s.mutate(ctx, op, tournamentID, func(_ *gorm.DB, t *Tournament) (map[string]interface{}, error) {
		i := t.Schedule.Find(matchID)
		if i < 0 {
			return nil, apperrors.NotFound(domain, op, "match %s not found in tournament %d", matchID, t.ID)
		}
		schedule := slices.Clone(t.Schedule)
		m := &schedule[i]

		if result.WinnerID != nil {
			if !isSide(m, *result.WinnerID) {
				return nil, apperrors.Validation(domain, op,
					"winner %d is not a participant of match %s", *result.WinnerID, matchID)
			}
			m.WinnerID = result.WinnerID
		}
		if result.Score1 != nil {
			m.Score1 = result.Score1
		}
		if result.Score2 != nil {
			m.Score2 = result.Score2
		}
		if result.Remarks != nil {
			m.Remarks = *result.Remarks
		}

		recorded = *m
		t.Schedule = schedule
		return map[string]interface{}{"schedule": schedule}, nil
	})
	if err != nil {
		return nil, err
	}
	metrics.MatchResultsRecorded.Inc()
	s.log.Debug("match result recorded", zap.Uint("tournament_id", tournamentID), zap.String("match_id", matchID))
	return &recorded, nil
}

func isSide(m *Match, id uint) bool {
	for _, side := range []*uint{m.Team1ID, m.Team2ID, m.Participant1ID, m.Participant2ID} {
		if side != nil && *side == id {
			return true
		}
	}
	return false
}

// GetPlayerStatistics tallies every team and participant of the tournament's schedule.
func (s *Scheduler) GetPlayerStatistics(ctx context.Context, tournamentID uint) ([]Tally, error) {
	t, err := s.Get(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return Tallies(t.Schedule), nil
}

// Tallies computes per-side records over a schedule. A declared winner scores a
// win and a loss; no winner with equal scores is a draw for both; anything else
// only counts as played. The result is ordered by kind, then id.
func Tallies(schedule Schedule) []Tally {
	type key struct {
		kind string
		id   uint
	}
	tallies := map[key]*Tally{}
	get := func(kind string, id uint) *Tally {
		k := key{kind, id}
		t, ok := tallies[k]
		if !ok {
			t = &Tally{ID: id, Kind: kind}
			tallies[k] = t
		}
		return t
	}

	for i := range schedule {
		m := &schedule[i]
		a, b, ok := m.Sides()
		if !ok {
			continue
		}
		kind := KindParticipant
		if m.IsTeamMatch() {
			kind = KindTeam
		}
		ta, tb := get(kind, a), get(kind, b)
		ta.MatchesPlayed++
		tb.MatchesPlayed++

		switch {
		case m.WinnerID != nil && *m.WinnerID == a:
			ta.Wins++
			tb.Losses++
		case m.WinnerID != nil && *m.WinnerID == b:
			tb.Wins++
			ta.Losses++
		case m.IsDraw():
			ta.Draws++
			tb.Draws++
		}
	}

	out := make([]Tally, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, *t)
	}
	slices.SortFunc(out, func(x, y Tally) int {
		return cmp.Or(cmp.Compare(x.Kind, y.Kind), cmp.Compare(x.ID, y.ID))
	})
	return out
}
