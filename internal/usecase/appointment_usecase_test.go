package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

func newAppointmentFixture(t *testing.T) (AppointmentUsecase, *fakeAppointmentRepo, *fakePatientRepo, *fakeDepartmentRepo) {
	t.Helper()
	appointmentRepo := &fakeAppointmentRepo{}
	patientRepo := &fakePatientRepo{}
	departmentRepo := &fakeDepartmentRepo{}
	auditService, _ := newTestAuditService()
	uc := NewAppointmentUsecase(newTestDB(t), newTestLogger(), appointmentRepo, patientRepo, departmentRepo, auditService)
	return uc, appointmentRepo, patientRepo, departmentRepo
}

func bookRequest() *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane.doe@example.com",
		Phone:      "555-0100",
		Date:       "2026-09-15",
		Time:       "10:30 AM",
		Department: "Cardiology",
		Reason:     "Chest pain",
	}
}

func TestBookAppointmentCreatesPatient(t *testing.T) {
	uc, appointmentRepo, patientRepo, departmentRepo := newAppointmentFixture(t)
	departmentRepo.departments = []entity.Department{{ID: uuid.New(), Name: "Cardiology", Status: "Active"}}

	resp, err := uc.Book(context.Background(), bookRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	if len(patientRepo.patients) != 1 {
		t.Fatalf("expected 1 patient, got %d", len(patientRepo.patients))
	}
	patient := patientRepo.patients[0]
	if patient.Status != "Active" {
		t.Errorf("expected new patient status Active, got %q", patient.Status)
	}
	if patient.Email != "jane.doe@example.com" {
		t.Errorf("unexpected patient email %q", patient.Email)
	}

	if len(appointmentRepo.appointments) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(appointmentRepo.appointments))
	}
	if resp.Status != string(entity.AppointmentStatusScheduled) {
		t.Errorf("expected status Scheduled, got %q", resp.Status)
	}
	if resp.DoctorID != nil {
		t.Error("booking must not assign a doctor")
	}
	if resp.Duration != 30 {
		t.Errorf("expected default duration 30, got %d", resp.Duration)
	}
	if resp.PatientID != patient.ID {
		t.Error("appointment not linked to created patient")
	}
	if resp.DepartmentID == nil || *resp.DepartmentID != departmentRepo.departments[0].ID {
		t.Error("appointment not linked to matched department")
	}
}

func TestBookAppointmentReusesPatientByEmail(t *testing.T) {
	uc, appointmentRepo, patientRepo, _ := newAppointmentFixture(t)

	existing := entity.Patient{
		ID:        uuid.New(),
		FirstName: "Janet",
		LastName:  "Original",
		Email:     "jane.doe@example.com",
		Phone:     "555-9999",
		Status:    "Active",
	}
	patientRepo.patients = []entity.Patient{existing}

	// Submitted name and phone differ from the stored record.
	resp, err := uc.Book(context.Background(), bookRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	if len(patientRepo.patients) != 1 {
		t.Fatalf("expected patient to be reused, got %d patients", len(patientRepo.patients))
	}
	if patientRepo.patients[0].FirstName != "Janet" || patientRepo.patients[0].Phone != "555-9999" {
		t.Error("existing patient record must not be overwritten by booking data")
	}
	if resp.PatientID != existing.ID {
		t.Error("appointment not linked to existing patient")
	}
	if len(appointmentRepo.appointments) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(appointmentRepo.appointments))
	}
}

func TestBookAppointmentDuplicateSubmissions(t *testing.T) {
	uc, appointmentRepo, patientRepo, _ := newAppointmentFixture(t)

	// No idempotency key: the same submission twice yields one patient
	// and two appointments.
	if _, err := uc.Book(context.Background(), bookRequest()); err != nil {
		t.Fatalf("first Book: %v", err)
	}
	if _, err := uc.Book(context.Background(), bookRequest()); err != nil {
		t.Fatalf("second Book: %v", err)
	}

	if len(patientRepo.patients) != 1 {
		t.Errorf("expected 1 patient, got %d", len(patientRepo.patients))
	}
	if len(appointmentRepo.appointments) != 2 {
		t.Errorf("expected 2 appointments, got %d", len(appointmentRepo.appointments))
	}
}

func TestBookAppointmentDepartmentMatching(t *testing.T) {
	uc, appointmentRepo, _, departmentRepo := newAppointmentFixture(t)
	departmentRepo.departments = []entity.Department{{ID: uuid.New(), Name: "Cardiology", Status: "Active"}}

	t.Run("CaseInsensitiveExactMatch", func(t *testing.T) {
		req := bookRequest()
		req.Department = "cardiology"
		resp, err := uc.Book(context.Background(), req)
		if err != nil {
			t.Fatalf("Book: %v", err)
		}
		if resp.DepartmentID == nil {
			t.Fatal("expected department match for differently-cased exact name")
		}
	})

	t.Run("SubstringDoesNotMatch", func(t *testing.T) {
		req := bookRequest()
		req.Department = "Cardio"
		resp, err := uc.Book(context.Background(), req)
		if err != nil {
			t.Fatalf("Book: %v", err)
		}
		if resp.DepartmentID != nil {
			t.Fatal("partial name must not match a department")
		}
	})

	t.Run("NoDepartmentGiven", func(t *testing.T) {
		req := bookRequest()
		req.Department = ""
		resp, err := uc.Book(context.Background(), req)
		if err != nil {
			t.Fatalf("Book: %v", err)
		}
		if resp.DepartmentID != nil {
			t.Fatal("expected no department reference")
		}
	})

	if len(appointmentRepo.appointments) != 3 {
		t.Errorf("expected 3 appointments, got %d", len(appointmentRepo.appointments))
	}
}

func TestBookAppointmentInvalidDate(t *testing.T) {
	uc, appointmentRepo, patientRepo, _ := newAppointmentFixture(t)

	req := bookRequest()
	req.Date = "15-09-2026"
	_, err := uc.Book(context.Background(), req)
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
	if len(patientRepo.patients) != 0 || len(appointmentRepo.appointments) != 0 {
		t.Error("invalid date must be rejected before any writes")
	}
}

func TestCancelAppointmentIsIdempotent(t *testing.T) {
	uc, appointmentRepo, _, _ := newAppointmentFixture(t)

	id := uuid.New()
	appointmentRepo.appointments = []entity.Appointment{{
		ID:        id,
		PatientID: uuid.New(),
		Status:    entity.AppointmentStatusScheduled,
	}}

	first, err := uc.CancelAppointment(context.Background(), id)
	if err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if first.Status != string(entity.AppointmentStatusCancelled) {
		t.Fatalf("expected Cancelled, got %q", first.Status)
	}

	second, err := uc.CancelAppointment(context.Background(), id)
	if err != nil {
		t.Fatalf("second cancel must succeed: %v", err)
	}
	if second.Status != string(entity.AppointmentStatusCancelled) {
		t.Fatalf("expected Cancelled after repeat cancel, got %q", second.Status)
	}
}

func TestCancelAppointmentNotFound(t *testing.T) {
	uc, _, _, _ := newAppointmentFixture(t)

	_, err := uc.CancelAppointment(context.Background(), uuid.New())
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestUpdateAppointment(t *testing.T) {
	uc, appointmentRepo, _, _ := newAppointmentFixture(t)

	id := uuid.New()
	appointmentRepo.appointments = []entity.Appointment{{
		ID:        id,
		PatientID: uuid.New(),
		Status:    entity.AppointmentStatusScheduled,
	}}

	t.Run("PartialUpdate", func(t *testing.T) {
		status := "Completed"
		notes := "Follow up in two weeks"
		resp, err := uc.UpdateAppointment(context.Background(), id, &dto.UpdateAppointmentRequest{
			Status: &status,
			Notes:  &notes,
		})
		if err != nil {
			t.Fatalf("UpdateAppointment: %v", err)
		}
		if resp.Status != "Completed" || resp.Notes != notes {
			t.Errorf("update not applied: status=%q notes=%q", resp.Status, resp.Notes)
		}
	})

	t.Run("EmptyUpdateReturnsCurrent", func(t *testing.T) {
		resp, err := uc.UpdateAppointment(context.Background(), id, &dto.UpdateAppointmentRequest{})
		if err != nil {
			t.Fatalf("UpdateAppointment: %v", err)
		}
		if resp.ID != id {
			t.Error("expected current appointment back")
		}
	})

	t.Run("MalformedDoctorID", func(t *testing.T) {
		bad := "not-a-uuid"
		_, err := uc.UpdateAppointment(context.Background(), id, &dto.UpdateAppointmentRequest{DoctorID: &bad})
		if !errors.Is(err, ErrInvalidUpdateField) {
			t.Fatalf("expected ErrInvalidUpdateField, got %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		notes := "x"
		_, err := uc.UpdateAppointment(context.Background(), uuid.New(), &dto.UpdateAppointmentRequest{Notes: &notes})
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})
}

func TestDeleteAppointment(t *testing.T) {
	uc, appointmentRepo, _, _ := newAppointmentFixture(t)

	id := uuid.New()
	appointmentRepo.appointments = []entity.Appointment{{ID: id, PatientID: uuid.New()}}

	if err := uc.DeleteAppointment(context.Background(), id); err != nil {
		t.Fatalf("DeleteAppointment: %v", err)
	}
	if err := uc.DeleteAppointment(context.Background(), id); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound on repeat delete, got %v", err)
	}
}

func TestGetStats(t *testing.T) {
	uc, appointmentRepo, _, _ := newAppointmentFixture(t)

	statuses := []entity.AppointmentStatus{
		entity.AppointmentStatusScheduled,
		entity.AppointmentStatusScheduled,
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusCancelled,
		entity.AppointmentStatusNoShow,
	}
	for _, s := range statuses {
		appointmentRepo.appointments = append(appointmentRepo.appointments, entity.Appointment{
			ID:        uuid.New(),
			PatientID: uuid.New(),
			Status:    s,
		})
	}

	stats, err := uc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	// No-show is counted in the total but has no dedicated bucket.
	if stats.Total != 5 {
		t.Errorf("total: expected 5, got %d", stats.Total)
	}
	if stats.Scheduled != 2 {
		t.Errorf("scheduled: expected 2, got %d", stats.Scheduled)
	}
	if stats.Completed != 1 {
		t.Errorf("completed: expected 1, got %d", stats.Completed)
	}
	if stats.Cancelled != 1 {
		t.Errorf("cancelled: expected 1, got %d", stats.Cancelled)
	}
}
