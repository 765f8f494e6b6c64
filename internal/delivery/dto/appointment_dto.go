package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// BookAppointmentRequest is the unauthenticated booking submission.
// Department is a name string resolved case-insensitively; no doctor
// selection at booking time.
type BookAppointmentRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Date       string `json:"date" validate:"required"` // YYYY-MM-DD
	Time       string `json:"time" validate:"omitempty"`
	Department string `json:"department" validate:"omitempty"`
	Reason     string `json:"reason" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	DoctorID     *string `json:"doctor_id" validate:"omitempty,uuid"`
	DepartmentID *string `json:"department_id" validate:"omitempty,uuid"`
	Date         *string `json:"date" validate:"omitempty"`
	Time         *string `json:"time" validate:"omitempty"`
	Reason       *string `json:"reason" validate:"omitempty"`
	Status       *string `json:"status" validate:"omitempty,oneof=Scheduled Completed Cancelled No-show"`
	Notes        *string `json:"notes" validate:"omitempty"`
	Duration     *int    `json:"duration" validate:"omitempty,gte=1"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID           `json:"id"`
	PatientID       uuid.UUID           `json:"patient_id"`
	DoctorID        *uuid.UUID          `json:"doctor_id,omitempty"`
	DepartmentID    *uuid.UUID          `json:"department_id,omitempty"`
	Patient         *PatientResponse    `json:"patient,omitempty"`
	Doctor          *DoctorResponse     `json:"doctor,omitempty"`
	Department      *DepartmentResponse `json:"department,omitempty"`
	AppointmentDate time.Time           `json:"appointment_date"`
	Time            string              `json:"time,omitempty"`
	Reason          string              `json:"reason,omitempty"`
	Status          string              `json:"status"`
	Notes           string              `json:"notes,omitempty"`
	Duration        int                 `json:"duration"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// AppointmentStatsResponse is the status breakdown for appointments.
type AppointmentStatsResponse struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Scheduled int64 `json:"scheduled"`
	Cancelled int64 `json:"cancelled"`
}
