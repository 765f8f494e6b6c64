package repository

import (
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	// FindRecent returns the most recently created appointments with
	// patient and doctor preloaded, newest first.
	FindRecent(db *gorm.DB, limit int) ([]entity.Appointment, error)
	Create(db *gorm.DB, appointment *entity.Appointment) error
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error)
	// UpdateStatus sets the status unconditionally; cancelling an already
	// cancelled appointment is a no-op that still reports success.
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Count(db *gorm.DB) (int64, error)
	CountByStatus(db *gorm.DB, status entity.AppointmentStatus) (int64, error)
}
