package repository

import (
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindByDepartmentID(db *gorm.DB, departmentID uuid.UUID) ([]entity.Doctor, error)
	Search(db *gorm.DB, filter entity.SearchFilter) ([]entity.Doctor, error)
	Create(db *gorm.DB, doctor *entity.Doctor) error
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
