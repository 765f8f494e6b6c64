package entity

import (
	"time"

	"github.com/google/uuid"
)

// Department represents a hospital department. Name is the unique,
// case-insensitive lookup key used by booking resolution.
type Department struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	DoctorID    *uuid.UUID `gorm:"type:uuid" json:"doctor_id,omitempty"`
	Floor       int        `json:"floor,omitempty"`
	Phone       string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email       string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships: lead doctor, optional
	Doctor *Doctor `gorm:"foreignKey:DoctorID;constraint:-" json:"doctor,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}
