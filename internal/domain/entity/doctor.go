package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a doctor record with an independent lifecycle.
// The department reference is optional and carries no FK constraint;
// deleting a department leaves the reference dangling.
type Doctor struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName      string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone          string     `gorm:"type:varchar(20);not null" json:"phone"`
	Specialization string     `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid;index" json:"department_id,omitempty"`
	Experience     int        `json:"experience,omitempty"`
	Qualifications StringList `gorm:"type:jsonb" json:"qualifications,omitempty"`
	Bio            string     `gorm:"type:text" json:"bio,omitempty"`
	Rating         float64    `gorm:"not null;default:0" json:"rating"`
	TotalPatients  int        `gorm:"not null;default:0" json:"total_patients"`
	AvailableSlots StringList `gorm:"type:jsonb" json:"available_slots,omitempty"`
	Avatar         string     `gorm:"type:text" json:"avatar,omitempty"`
	Status         string     `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:-" json:"department,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
