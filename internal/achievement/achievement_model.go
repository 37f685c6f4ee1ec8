package achievement

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Type string

const (
	TypeMedal       Type = "medal"
	TypeTrophy      Type = "trophy"
	TypeCertificate Type = "certificate"
	TypeRank        Type = "rank"
	TypeRecord      Type = "record"
	TypeRecognition Type = "recognition"
)

type Level string

const (
	LevelSchool        Level = "school"
	LevelInterSchool   Level = "inter_school"
	LevelDistrict      Level = "district"
	LevelZonal         Level = "zonal"
	LevelState         Level = "state"
	LevelNational      Level = "national"
	LevelInternational Level = "international"
)

// IsHighLevel reports whether the level counts as a high-level achievement on a CV.
func (l Level) IsHighLevel() bool {
	switch l {
	case LevelState, LevelNational, LevelInternational:
		return true
	}
	return false
}

type Medal string

const (
	MedalGold   Medal = "gold"
	MedalSilver Medal = "silver"
	MedalBronze Medal = "bronze"
)

// SportsAchievement is a recognition earned by a student in a sport.
type SportsAchievement struct {
	gorm.Model
	SportID         uint      `json:"sport_id" gorm:"index;not null"`
	StudentID       uint      `json:"student_id" gorm:"index;not null"`
	TeamID          *uint     `json:"team_id,omitempty" gorm:"index"`
	TournamentID    *uint     `json:"tournament_id,omitempty" gorm:"index"`
	Title           string    `json:"title" gorm:"not null"`
	Description     string    `json:"description" gorm:"type:text"`
	Type            Type      `json:"type" gorm:"type:varchar(20);not null;index"`
	Level           Level     `json:"level" gorm:"type:varchar(20);not null;index"`
	Position        *int      `json:"position,omitempty"`
	Medal           *Medal    `json:"medal,omitempty" gorm:"type:varchar(10)"`
	RecordType      *string   `json:"record_type,omitempty"`
	RecordValue     *string   `json:"record_value,omitempty"`
	AchievementDate time.Time `json:"achievement_date" gorm:"not null"`
}

// AcademicYear names the April-to-March school year containing t, e.g. "2025-26".
func AcademicYear(t time.Time) string {
	start := t.Year()
	if t.Month() < time.April {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}
