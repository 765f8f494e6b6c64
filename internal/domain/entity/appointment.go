package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "No-show"
)

// Appointment links a patient to an optional doctor and department.
// Doctor and department references carry no FK constraint: hard deletes
// of the referenced records leave the identifiers dangling.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        *uuid.UUID        `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	DepartmentID    *uuid.UUID        `gorm:"type:uuid;index" json:"department_id,omitempty"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	Time            string            `gorm:"type:varchar(20)" json:"time,omitempty"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'Scheduled';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	Duration        int               `gorm:"not null;default:30" json:"duration"`
	CreatedAt       time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient    *Patient    `gorm:"foreignKey:PatientID;constraint:-" json:"patient,omitempty"`
	Doctor     *Doctor     `gorm:"foreignKey:DoctorID;constraint:-" json:"doctor,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:-" json:"department,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
