package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient record. Created either through patient
// management or implicitly on first appointment booking; never auto-deleted.
type Patient struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName        string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName         string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone            string     `gorm:"type:varchar(20);not null" json:"phone"`
	DateOfBirth      *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender           string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BloodGroup       string     `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Address          string     `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact string     `gorm:"type:varchar(255)" json:"emergency_contact,omitempty"`
	Insurance        string     `gorm:"type:varchar(255)" json:"insurance,omitempty"`
	MedicalHistory   StringList `gorm:"type:jsonb" json:"medical_history,omitempty"`
	Avatar           string     `gorm:"type:text" json:"avatar,omitempty"`
	Status           string     `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	LastVisit        *time.Time `json:"last_visit,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender values
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
