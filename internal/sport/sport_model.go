// sport/model.go
package sport

import (
	"gorm.io/gorm"
)

type Category string

const (
	CategoryIndividual  Category = "individual"
	CategoryTeam        Category = "team"
	CategoryTraditional Category = "traditional"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Sport is a discipline offered by the school's sports program.
type Sport struct {
	gorm.Model
	Name        string   `json:"name" gorm:"uniqueIndex;not null"`
	Description string   `json:"description"`
	Category    Category `json:"category" gorm:"type:varchar(20);not null;default:'individual'"`
	Status      Status   `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
}

// IsActive reports whether students may currently enroll in the sport.
func (s *Sport) IsActive() bool {
	return s.Status == StatusActive
}
