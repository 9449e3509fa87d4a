package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Difficulty is the effort level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the accepted difficulty values in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// StringList stores an ordered list of strings as a JSON text column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	// Stored unescaped so substring queries see "&", "<" and ">" as typed.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]string(l)); err != nil {
		return nil, err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}

	var out []string
	if err := json.Unmarshal(bytes, &out); err != nil {
		return err
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

// Recipe is the single entity of the catalog.
type Recipe struct {
	ID          string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Ingredients StringList `gorm:"type:text;not null" json:"ingredients"`
	Steps       StringList `gorm:"type:text;not null" json:"steps"`
	CookingTime *int       `json:"cookingTime"`
	Difficulty  Difficulty `gorm:"size:10;not null" json:"difficulty"`
	Category    string     `gorm:"size:50;index" json:"category,omitempty"`
	ImageURL    string     `gorm:"size:512" json:"imageURL,omitempty"`
	CreatedBy   string     `gorm:"size:255" json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the identifier and fills defaults the store owns.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.Normalize()
	return nil
}

// Normalize applies the schema defaults: Easy difficulty and non-nil lists.
func (r *Recipe) Normalize() {
	if r.Difficulty == "" {
		r.Difficulty = DifficultyEasy
	}
	if r.Ingredients == nil {
		r.Ingredients = StringList{}
	}
	if r.Steps == nil {
		r.Steps = StringList{}
	}
}

// Minutes returns the cooking time and whether it is set.
func (r *Recipe) Minutes() (int, bool) {
	if r.CookingTime == nil {
		return 0, false
	}
	return *r.CookingTime, true
}

// IntPtr is a helper for optional integer fields.
func IntPtr(v int) *int {
	return &v
}
