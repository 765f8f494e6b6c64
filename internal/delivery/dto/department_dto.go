package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDepartmentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"omitempty"`
	DoctorID    *string `json:"doctor_id" validate:"omitempty,uuid"`
	Floor       int     `json:"floor" validate:"omitempty"`
	Phone       string  `json:"phone" validate:"omitempty"`
	Email       string  `json:"email" validate:"omitempty,email"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty"`
	DoctorID    *string `json:"doctor_id" validate:"omitempty,uuid"`
	Floor       *int    `json:"floor" validate:"omitempty"`
	Phone       *string `json:"phone" validate:"omitempty"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Status      *string `json:"status" validate:"omitempty"`
}

// Response DTOs

type DepartmentResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	DoctorID    *uuid.UUID      `json:"doctor_id,omitempty"`
	Doctor      *DoctorResponse `json:"doctor,omitempty"`
	Floor       int             `json:"floor,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Email       string          `json:"email,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int                  `json:"total"`
}
