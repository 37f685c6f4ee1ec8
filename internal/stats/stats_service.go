// Package stats computes read-only aggregates over enrollments, tournaments and achievements.
package stats

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/DhavalSuthar-24/schoolsports/internal/achievement"
	"github.com/DhavalSuthar-24/schoolsports/internal/enrollment"
	"github.com/DhavalSuthar-24/schoolsports/internal/tournament"
)

// Filter narrows GetEnrollmentStats. Zero fields are ignored.
type Filter struct {
	SportID uint `form:"sport_id"`
	TeamID  uint `form:"team_id"`
}

type SportCount struct {
	SportID uint `json:"sport_id"`
	Active  int  `json:"active"`
	Total   int  `json:"total"`
}

type EnrollmentStats struct {
	Total             int          `json:"total"`
	Active            int          `json:"active"`
	Withdrawn         int          `json:"withdrawn"`
	Completed         int          `json:"completed"`
	BySport           []SportCount `json:"by_sport"`
	TotalSessions     int          `json:"total_sessions"`
	TotalAttended     int          `json:"total_attended"`
	AverageAttendance float64      `json:"average_attendance"`
}

type ParticipationSummary struct {
	StudentID         uint    `json:"student_id"`
	TotalSports       int     `json:"total_sports"`
	Active            int     `json:"active"`
	Completed         int     `json:"completed"`
	Withdrawn         int     `json:"withdrawn"`
	TotalSessions     int     `json:"total_sessions"`
	TotalAttended     int     `json:"total_attended"`
	Achievements      int64   `json:"achievements"`
	AverageAttendance float64 `json:"average_attendance"`
}

type TournamentStats struct {
	TournamentID     uint               `json:"tournament_id"`
	Name             string             `json:"name"`
	Status           tournament.Status  `json:"status"`
	Teams            int                `json:"teams"`
	Participants     int                `json:"participants"`
	TotalMatches     int                `json:"total_matches"`
	CompletedMatches int                `json:"completed_matches"`
	DecidedMatches   int                `json:"decided_matches"`
	Draws            int                `json:"draws"`
	PendingMatches   int                `json:"pending_matches"`
	Tallies          []tournament.Tally `json:"tallies"`
}

// Aggregator is the statistics service.
type Aggregator struct {
	enrollments  enrollment.EnrollmentRepository
	achievements achievement.AchievementRepository
	tournaments  *tournament.Scheduler
}

func NewAggregator(enrollments enrollment.EnrollmentRepository, achievements achievement.AchievementRepository,
	tournaments *tournament.Scheduler) *Aggregator {
	return &Aggregator{enrollments: enrollments, achievements: achievements, tournaments: tournaments}
}

// GetEnrollmentStats counts enrollments by status and sport. The attendance
// average only covers enrollments with at least one session.
func (a *Aggregator) GetEnrollmentStats(ctx context.Context, filter Filter) (*EnrollmentStats, error) {
	rows, err := a.enrollments.ListAll(ctx, enrollment.Filter{SportID: filter.SportID, TeamID: filter.TeamID})
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	out := &EnrollmentStats{Total: len(rows), BySport: []SportCount{}}
	bySport := map[uint]*SportCount{}
	sum, counted := 0, 0
	for i := range rows {
		e := &rows[i]
		switch e.Status {
		case enrollment.StatusActive:
			out.Active++
		case enrollment.StatusWithdrawn:
			out.Withdrawn++
		case enrollment.StatusCompleted:
			out.Completed++
		}

		sc, ok := bySport[e.SportID]
		if !ok {
			sc = &SportCount{SportID: e.SportID}
			bySport[e.SportID] = sc
		}
		sc.Total++
		if e.IsActive() {
			sc.Active++
		}

		out.TotalSessions += e.TotalSessions
		out.TotalAttended += e.AttendanceCount
		if e.TotalSessions > 0 {
			sum += e.AttendancePercentage()
			counted++
		}
	}
	for _, sc := range bySport {
		out.BySport = append(out.BySport, *sc)
	}
	slices.SortFunc(out.BySport, func(x, y SportCount) int { return int(x.SportID) - int(y.SportID) })
	if counted > 0 {
		out.AverageAttendance = round2(float64(sum) / float64(counted))
	}
	return out, nil
}

// GetStudentParticipationSummary summarises a student's enrollments across sports.
// The attendance average covers every enrollment.
func (a *Aggregator) GetStudentParticipationSummary(ctx context.Context, studentID uint) (*ParticipationSummary, error) {
	rows, err := a.enrollments.ListAll(ctx, enrollment.Filter{StudentID: studentID})
	if err != nil {
		return nil, fmt.Errorf("list enrollments of student %d: %w", studentID, err)
	}
	achievements, err := a.achievements.CountStudentAchievements(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("count achievements of student %d: %w", studentID, err)
	}

	out := &ParticipationSummary{StudentID: studentID, Achievements: achievements}
	sports := map[uint]struct{}{}
	sum := 0
	for i := range rows {
		e := &rows[i]
		sports[e.SportID] = struct{}{}
		switch e.Status {
		case enrollment.StatusActive:
			out.Active++
		case enrollment.StatusCompleted:
			out.Completed++
		case enrollment.StatusWithdrawn:
			out.Withdrawn++
		}
		out.TotalSessions += e.TotalSessions
		out.TotalAttended += e.AttendanceCount
		sum += e.AttendancePercentage()
	}
	out.TotalSports = len(sports)
	if len(rows) > 0 {
		out.AverageAttendance = round2(float64(sum) / float64(len(rows)))
	}
	return out, nil
}

// GetTournamentStatistics summarises a tournament's roster, schedule progress and tallies.
func (a *Aggregator) GetTournamentStatistics(ctx context.Context, tournamentID uint) (*TournamentStats, error) {
	t, err := a.tournaments.Get(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	out := &TournamentStats{
		TournamentID: t.ID,
		Name:         t.Name,
		Status:       t.Status,
		Teams:        len(t.Teams),
		Participants: len(t.Participants),
		TotalMatches: len(t.Schedule),
		Tallies:      tournament.Tallies(t.Schedule),
	}
	for i := range t.Schedule {
		m := &t.Schedule[i]
		if !m.HasResult() {
			continue
		}
		out.CompletedMatches++
		switch {
		case m.WinnerID != nil:
			out.DecidedMatches++
		case m.IsDraw():
			out.Draws++
		}
	}
	out.PendingMatches = out.TotalMatches - out.CompletedMatches
	return out, nil
}

// GetPlayerStatistics returns the per-team and per-participant tallies of a tournament.
func (a *Aggregator) GetPlayerStatistics(ctx context.Context, tournamentID uint) ([]tournament.Tally, error) {
	return a.tournaments.GetPlayerStatistics(ctx, tournamentID)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
