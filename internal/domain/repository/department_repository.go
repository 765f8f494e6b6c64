package repository

import (
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentRepository interface {
	FindAll(db *gorm.DB) ([]entity.Department, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Department, error)
	// FindByName matches the department name case-insensitively but exactly.
	FindByName(db *gorm.DB, name string) (*entity.Department, error)
	Create(db *gorm.DB, department *entity.Department) error
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
