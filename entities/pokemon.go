package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the storage format for capture dates.
const DateLayout = "2006-01-02"

// Pokemon is a captured creature. TrainerID is nil while it is unowned.
type Pokemon struct {
	ID         string  `gorm:"type:text;primaryKey" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	Type       string  `gorm:"not null" json:"type"`
	Ability    string  `gorm:"not null" json:"ability"`
	DateCaught string  `json:"date_caught"`
	TrainerID  *string `gorm:"index" json:"trainer_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func (p *Pokemon) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	return
}

// PokemonTypes is the canonical set of types, stored capitalized.
var PokemonTypes = []string{
	"Normal",
	"Fire",
	"Water",
	"Electric",
	"Grass",
	"Ice",
	"Fighting",
	"Poison",
	"Ground",
	"Flying",
	"Psychic",
	"Bug",
	"Rock",
	"Ghost",
	"Dragon",
	"Dark",
	"Steel",
	"Fairy",
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// NormalizeType capitalizes the input and reports whether the result is
// a known pokemon type.
func NormalizeType(s string) (string, bool) {
	t := Capitalize(s)
	for _, known := range PokemonTypes {
		if t == known {
			return t, true
		}
	}
	return t, false
}
