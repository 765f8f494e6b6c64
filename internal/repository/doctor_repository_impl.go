package repository

import (
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := db.Preload("Department").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Department").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByDepartmentID(db *gorm.DB, departmentID uuid.UUID) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Department").Where("department_id = ?", departmentID).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// Search matches first name, last name and specialization as
// case-insensitive substrings, regardless of department.
func (r *doctorRepository) Search(db *gorm.DB, filter entity.SearchFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	pattern := "%" + filter.Query + "%"
	err := db.Preload("Department").
		Where("first_name ILIKE ? OR last_name ILIKE ? OR specialization ILIKE ?", pattern, pattern, pattern).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := db.Model(&entity.Doctor{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}
