package model

import "time"

// Date modes supported by a memorial.
const (
	DateModeSolar = "solar"
	DateModeLunar = "lunar"
)

// Memorial types shown in the UI; free-form beyond these two.
const (
	TypeBirthday    = "birthday"
	TypeAnniversary = "anniversary"
	TypeCustom      = "custom"
)

// Memorial is a recurring date of significance (birthday, anniversary, ...).
// Exactly one of SolarDate or LunarMonth+LunarDay is set, matching DateMode.
type Memorial struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	MemorialType string    `gorm:"index" json:"memorial_type"`
	DateMode     string    `gorm:"index" json:"date_mode"`
	SolarDate    *string   `json:"solar_date"` // MM-DD, no year
	LunarMonth   *int      `json:"lunar_month"`
	LunarDay     *int      `json:"lunar_day"`
	LunarLeap    bool      `json:"lunar_leap"`
	StartYear    *int      `json:"start_year"` // for age / anniversary-count display
	Person       *string   `json:"person"`
	GroupName    *string   `gorm:"index" json:"group_name"`
	Note         *string   `json:"note"`
	Recurring    bool      `json:"recurring"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Reminders []Reminder `gorm:"foreignKey:MemorialID" json:"reminders,omitempty"`
}
