package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trainer represents a registered account in the pokedex.
type Trainer struct {
	ID        string `gorm:"type:text;primaryKey" json:"id"`
	Name      string `json:"name"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	Team      string `json:"team"`
	Admin     bool   `gorm:"default:false" json:"admin"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (t *Trainer) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now().Format(time.RFC3339)
	t.UpdatedAt = t.CreatedAt
	return
}

// Teams a trainer may join.
var Teams = []string{
	"Mystic",
	"Valor",
	"Instinct",
}

// NormalizeTeam capitalizes the input and reports whether the result is
// a known team.
func NormalizeTeam(s string) (string, bool) {
	team := Capitalize(s)
	for _, known := range Teams {
		if team == known {
			return team, true
		}
	}
	return team, false
}
