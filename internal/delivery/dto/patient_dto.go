package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	FirstName        string   `json:"first_name" validate:"required"`
	LastName         string   `json:"last_name" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Phone            string   `json:"phone" validate:"required"`
	DateOfBirth      string   `json:"date_of_birth" validate:"omitempty"` // YYYY-MM-DD
	Gender           string   `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	BloodGroup       string   `json:"blood_group" validate:"omitempty"`
	Address          string   `json:"address" validate:"omitempty"`
	EmergencyContact string   `json:"emergency_contact" validate:"omitempty"`
	Insurance        string   `json:"insurance" validate:"omitempty"`
	MedicalHistory   []string `json:"medical_history" validate:"omitempty"`
}

// UpdatePatientRequest carries a partial update; nil fields are left
// untouched (last-write-wins, no optimistic concurrency check).
type UpdatePatientRequest struct {
	FirstName        *string   `json:"first_name" validate:"omitempty,min=1"`
	LastName         *string   `json:"last_name" validate:"omitempty,min=1"`
	Email            *string   `json:"email" validate:"omitempty,email"`
	Phone            *string   `json:"phone" validate:"omitempty"`
	DateOfBirth      *string   `json:"date_of_birth" validate:"omitempty"`
	Gender           *string   `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	BloodGroup       *string   `json:"blood_group" validate:"omitempty"`
	Address          *string   `json:"address" validate:"omitempty"`
	EmergencyContact *string   `json:"emergency_contact" validate:"omitempty"`
	Insurance        *string   `json:"insurance" validate:"omitempty"`
	MedicalHistory   *[]string `json:"medical_history" validate:"omitempty"`
	Status           *string   `json:"status" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID               uuid.UUID  `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Gender           string     `json:"gender,omitempty"`
	BloodGroup       string     `json:"blood_group,omitempty"`
	Address          string     `json:"address,omitempty"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	Insurance        string     `json:"insurance,omitempty"`
	MedicalHistory   []string   `json:"medical_history,omitempty"`
	Status           string     `json:"status"`
	LastVisit        *time.Time `json:"last_visit,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
