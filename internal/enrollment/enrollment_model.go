package enrollment

import (
	"math"
	"time"

	"github.com/DhavalSuthar-24/schoolsports/pkg/lifecycle"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusWithdrawn Status = "withdrawn"
	StatusCompleted Status = "completed"
)

// Transitions is the enrollment lifecycle. Withdrawn and completed are terminal.
var Transitions = lifecycle.Table[Status]{
	Entity: "enrollment",
	Edges: map[Status][]Status{
		StatusActive: {StatusWithdrawn, StatusCompleted},
	},
}

// SportsEnrollment is a student's registration in a sport. At most one row per
// (sport, student) may be active; the partial unique index enforces it in the database.
type SportsEnrollment struct {
	gorm.Model
	SportID         uint      `json:"sport_id" gorm:"not null;index;uniqueIndex:idx_active_sport_student,where:status = 'active'"`
	StudentID       uint      `json:"student_id" gorm:"not null;index;uniqueIndex:idx_active_sport_student,where:status = 'active'"`
	TeamID          *uint     `json:"team_id,omitempty" gorm:"index"`
	EnrollmentDate  time.Time `json:"enrollment_date" gorm:"not null"`
	Status          Status    `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	AttendanceCount int       `json:"attendance_count" gorm:"not null;default:0"`
	TotalSessions   int       `json:"total_sessions" gorm:"not null;default:0"`
	Remarks         string    `json:"remarks" gorm:"type:text"`
}

// AttendancePercentage is attendanceCount/totalSessions*100 rounded to the
// nearest integer, and 0 when no session has been recorded.
func AttendancePercentage(e *SportsEnrollment) int {
	if e == nil || e.TotalSessions <= 0 {
		return 0
	}
	pct := int(math.Round(float64(e.AttendanceCount) / float64(e.TotalSessions) * 100))
	return max(0, min(pct, 100))
}

func (e *SportsEnrollment) AttendancePercentage() int {
	return AttendancePercentage(e)
}

func (e *SportsEnrollment) IsActive() bool {
	return e.Status == StatusActive
}
