// team/model.go
package team

import (
	"github.com/DhavalSuthar-24/schoolsports/internal/models"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Team represents a school team for one sport. Members is a cache of the
// students whose active enrollment points at the team; see Roster.
type Team struct {
	gorm.Model
	Name       string       `json:"name" gorm:"not null"`
	SportID    uint         `json:"sport_id" gorm:"index;not null"`
	CoachName  string       `json:"coach_name"`
	MaxMembers int          `json:"max_members" gorm:"default:0"` // 0 means unlimited
	Members    models.IDSet `json:"members" gorm:"type:json"`
	Status     Status       `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
}

func (t *Team) IsActive() bool {
	return t.Status == StatusActive
}

// HasRoomFor reports whether studentID can join without exceeding MaxMembers.
// A student already on the team always fits.
func (t *Team) HasRoomFor(studentID uint) bool {
	if t.MaxMembers <= 0 || t.Members.Contains(studentID) {
		return true
	}
	return len(t.Members) < t.MaxMembers
}
