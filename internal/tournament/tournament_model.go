package tournament

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DhavalSuthar-24/schoolsports/internal/models"
	"github.com/DhavalSuthar-24/schoolsports/pkg/lifecycle"
	"gorm.io/gorm"
)

type Type string

const (
	TypeIntraSchool   Type = "intra_school"
	TypeInterSchool   Type = "inter_school"
	TypeDistrict      Type = "district"
	TypeZonal         Type = "zonal"
	TypeState         Type = "state"
	TypeNational      Type = "national"
	TypeInternational Type = "international"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Transitions is the tournament lifecycle. Completed and cancelled are terminal.
var Transitions = lifecycle.Table[Status]{
	Entity: "tournament",
	Edges: map[Status][]Status{
		StatusScheduled: {StatusOngoing, StatusCancelled},
		StatusOngoing:   {StatusCompleted, StatusCancelled},
	},
}

// Tournament is a competition for one sport with its roster and match schedule.
type Tournament struct {
	gorm.Model
	SportID      uint               `json:"sport_id" gorm:"index;not null"`
	Name         string             `json:"name" gorm:"not null"`
	Description  string             `json:"description" gorm:"type:text"`
	Type         Type               `json:"type" gorm:"type:varchar(20);not null;index"`
	StartDate    time.Time          `json:"start_date" gorm:"not null"`
	EndDate      time.Time          `json:"end_date" gorm:"not null"`
	Venue        string             `json:"venue,omitempty"`
	Organizer    string             `json:"organizer,omitempty"`
	Status       Status             `json:"status" gorm:"type:varchar(20);not null;default:'scheduled';index"`
	Teams        models.IDSet       `json:"teams" gorm:"type:json"`
	Participants models.IDSet       `json:"participants" gorm:"type:json"`
	Schedule     Schedule           `json:"schedule" gorm:"type:json"`
	Photos       models.StringSlice `json:"photos" gorm:"type:json"`
	Videos       models.StringSlice `json:"videos" gorm:"type:json"`
}

// Match is one contest of a tournament schedule. Exactly one pairing mode is set:
// Team1ID/Team2ID or Participant1ID/Participant2ID.
type Match struct {
	MatchID        string    `json:"match_id"`
	Date           time.Time `json:"date"`
	Round          string    `json:"round,omitempty"`
	Venue          string    `json:"venue,omitempty"`
	Team1ID        *uint     `json:"team1_id,omitempty"`
	Team2ID        *uint     `json:"team2_id,omitempty"`
	Participant1ID *uint     `json:"participant1_id,omitempty"`
	Participant2ID *uint     `json:"participant2_id,omitempty"`
	Score1         *string   `json:"score1,omitempty"`
	Score2         *string   `json:"score2,omitempty"`
	WinnerID       *uint     `json:"winner_id,omitempty"`
	Remarks        string    `json:"remarks,omitempty"`
}

// IsTeamMatch reports whether the match is paired by teams.
func (m *Match) IsTeamMatch() bool {
	return m.Team1ID != nil || m.Team2ID != nil
}

// IsParticipantMatch reports whether the match is paired by individual students.
func (m *Match) IsParticipantMatch() bool {
	return m.Participant1ID != nil || m.Participant2ID != nil
}

// Sides returns the two competitor ids of the match in its pairing mode.
func (m *Match) Sides() (uint, uint, bool) {
	switch {
	case m.Team1ID != nil && m.Team2ID != nil:
		return *m.Team1ID, *m.Team2ID, true
	case m.Participant1ID != nil && m.Participant2ID != nil:
		return *m.Participant1ID, *m.Participant2ID, true
	}
	return 0, 0, false
}

// HasResult reports whether a winner or a pair of scores has been recorded.
func (m *Match) HasResult() bool {
	return m.WinnerID != nil || (m.Score1 != nil && m.Score2 != nil)
}

// IsDraw reports a match with no winner and textually equal scores.
func (m *Match) IsDraw() bool {
	return m.WinnerID == nil && m.Score1 != nil && m.Score2 != nil && *m.Score1 == *m.Score2
}

// Schedule is the ordered match list stored in a JSON column.
type Schedule []Match

// Find returns the index of matchID in the schedule, or -1.
func (s Schedule) Find(matchID string) int {
	for i := range s {
		if s[i].MatchID == matchID {
			return i
		}
	}
	return -1
}

func (s Schedule) Value() (driver.Value, error) {
	if s == nil {
		s = Schedule{}
	}
	b, err := json.Marshal([]Match(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *Schedule) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*s = Schedule{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("scan schedule: expected []byte or string, got %T", src)
	}
	var matches []Match
	if len(b) > 0 {
		if err := json.Unmarshal(b, &matches); err != nil {
			return err
		}
	}
	if matches == nil {
		matches = []Match{}
	}
	*s = matches
	return nil
}
