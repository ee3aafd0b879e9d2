package models

import (
	"time"

	"gorm.io/datatypes"
)

// InstituteSettings is the singleton configuration row for the institute.
// Extra carries ad hoc settings keys without schema churn.
type InstituteSettings struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	Name       string            `gorm:"size:255;not null" json:"name"`
	CenterCode string            `gorm:"size:64" json:"center_code"`
	Address    string            `gorm:"type:text" json:"address"`
	Phone      string            `gorm:"size:32" json:"phone"`
	Email      string            `gorm:"size:255" json:"email"`
	Website    string            `gorm:"size:255" json:"website"`
	Logo       string            `gorm:"size:512" json:"logo"`
	Extra      datatypes.JSONMap `gorm:"type:json" json:"extra"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
