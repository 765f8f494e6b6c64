package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidUpdateField  = errors.New("invalid update field value")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	GetStats(ctx context.Context) (*dto.AppointmentStatsResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	departmentRepo  repository.DepartmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	departmentRepo repository.DepartmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		departmentRepo:  departmentRepo,
		auditService:    auditService,
	}
}

// Book turns an unauthenticated booking submission into consistent
// Patient + Appointment records.
//
// Flow:
// 1. Resolve the patient by exact email; reuse unconditionally if found,
//    otherwise create one from the submitted fields.
// 2. Resolve the department by case-insensitive exact-name match when a
//    name was supplied; no match means no department reference.
// 3. Create the appointment with status Scheduled and no doctor.
//
// The two creates are intentionally not wrapped in a transaction: a
// patient created before a failing appointment insert stays. There is
// no idempotency key, so duplicate submissions create duplicate
// appointments. Concurrent first bookings for the same email are
// resolved only by the store's unique index on patient email.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	// Step 1: Resolve patient by exact email
	patient, err := u.patientRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to look up patient by email: %+v", err)
		return nil, err
	}
	if patient == nil {
		patient = &entity.Patient{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Status:    "Active",
		}
		if err := u.patientRepo.Create(db, patient); err != nil {
			u.log.Warnf("Failed to create patient during booking: %+v", err)
			return nil, err
		}
	}
	// An existing patient is reused as-is; submitted name/phone do not
	// overwrite the stored record.

	// Step 2: Resolve department by name, optional
	var departmentID *uuid.UUID
	if req.Department != "" {
		department, err := u.departmentRepo.FindByName(db, req.Department)
		if err != nil {
			u.log.Warnf("Failed to look up department %q: %+v", req.Department, err)
			return nil, err
		}
		if department != nil {
			departmentID = &department.ID
		}
		// No match: proceed without a department reference.
	}

	// Step 3: Create the appointment
	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		DepartmentID:    departmentID,
		AppointmentDate: date,
		Time:            req.Time,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusScheduled,
		Duration:        30,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		// The patient created above is not rolled back.
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, u.db, nil, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), req.Email); err != nil {
		u.log.Warnf("Failed to audit booking: %+v", err)
	}

	u.log.Infof("Appointment booked: id=%s, patient=%s", appointment.ID, patient.ID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointment applies a partial, last-write-wins update. Status
// transitions are not constrained here; any status may be set.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	fields, err := converter.AppointmentUpdateColumns(req)
	if err != nil {
		return nil, ErrInvalidUpdateField
	}

	db := u.db.WithContext(ctx)

	if len(fields) > 0 {
		rows, err := u.appointmentRepo.UpdateFields(db, id, fields)
		if err != nil {
			u.log.Warnf("Failed to update appointment %s: %+v", id, err)
			return nil, err
		}
		if rows == 0 {
			return nil, ErrAppointmentNotFound
		}
	}

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment forces status Cancelled. Cancelling an already
// cancelled appointment succeeds and leaves it Cancelled.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	rows, err := u.appointmentRepo.UpdateStatus(db, id, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := u.auditService.Log(ctx, u.db, nil, entity.AuditActionAppointmentCancel, "appointment", id.String(), nil); err != nil {
		u.log.Warnf("Failed to audit cancellation: %+v", err)
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	rows, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// GetStats counts appointments per status, each as a separate filtered
// count. Recomputed from scratch on every call.
func (u *appointmentUsecase) GetStats(ctx context.Context) (*dto.AppointmentStatsResponse, error) {
	db := u.db.WithContext(ctx)

	total, err := u.appointmentRepo.Count(db)
	if err != nil {
		return nil, err
	}
	completed, err := u.appointmentRepo.CountByStatus(db, entity.AppointmentStatusCompleted)
	if err != nil {
		return nil, err
	}
	scheduled, err := u.appointmentRepo.CountByStatus(db, entity.AppointmentStatusScheduled)
	if err != nil {
		return nil, err
	}
	cancelled, err := u.appointmentRepo.CountByStatus(db, entity.AppointmentStatusCancelled)
	if err != nil {
		return nil, err
	}

	return &dto.AppointmentStatsResponse{
		Total:     total,
		Completed: completed,
		Scheduled: scheduled,
		Cancelled: cancelled,
	}, nil
}
