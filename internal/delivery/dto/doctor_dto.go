package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	FirstName      string   `json:"first_name" validate:"required"`
	LastName       string   `json:"last_name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required"`
	Specialization string   `json:"specialization" validate:"omitempty"`
	DepartmentID   *string  `json:"department_id" validate:"omitempty,uuid"`
	Experience     int      `json:"experience" validate:"omitempty,gte=0"`
	Qualifications []string `json:"qualifications" validate:"omitempty"`
	Bio            string   `json:"bio" validate:"omitempty"`
	AvailableSlots []string `json:"available_slots" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	FirstName      *string   `json:"first_name" validate:"omitempty,min=1"`
	LastName       *string   `json:"last_name" validate:"omitempty,min=1"`
	Email          *string   `json:"email" validate:"omitempty,email"`
	Phone          *string   `json:"phone" validate:"omitempty"`
	Specialization *string   `json:"specialization" validate:"omitempty"`
	DepartmentID   *string   `json:"department_id" validate:"omitempty,uuid"`
	Experience     *int      `json:"experience" validate:"omitempty,gte=0"`
	Qualifications *[]string `json:"qualifications" validate:"omitempty"`
	Bio            *string   `json:"bio" validate:"omitempty"`
	Rating         *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	TotalPatients  *int      `json:"total_patients" validate:"omitempty,gte=0"`
	AvailableSlots *[]string `json:"available_slots" validate:"omitempty"`
	Status         *string   `json:"status" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID           `json:"id"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Specialization string              `json:"specialization,omitempty"`
	DepartmentID   *uuid.UUID          `json:"department_id,omitempty"`
	Department     *DepartmentResponse `json:"department,omitempty"`
	Experience     int                 `json:"experience,omitempty"`
	Qualifications []string            `json:"qualifications,omitempty"`
	Bio            string              `json:"bio,omitempty"`
	Rating         float64             `json:"rating"`
	TotalPatients  int                 `json:"total_patients"`
	AvailableSlots []string            `json:"available_slots,omitempty"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
