package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

func newDepartmentFixture(t *testing.T) (DepartmentUsecase, *fakeDepartmentRepo) {
	t.Helper()
	departmentRepo := &fakeDepartmentRepo{}
	auditService, _ := newTestAuditService()
	uc := NewDepartmentUsecase(newTestDB(t), newTestLogger(), departmentRepo, auditService)
	return uc, departmentRepo
}

func TestCreateDepartment(t *testing.T) {
	uc, _ := newDepartmentFixture(t)

	resp, err := uc.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{
		Name:  "Cardiology",
		Floor: 3,
	})
	if err != nil {
		t.Fatalf("CreateDepartment: %v", err)
	}
	if resp.Status != "Active" {
		t.Errorf("expected status Active, got %q", resp.Status)
	}
}

func TestCreateDepartmentDuplicateName(t *testing.T) {
	uc, departmentRepo := newDepartmentFixture(t)
	departmentRepo.departments = []entity.Department{{ID: uuid.New(), Name: "Cardiology"}}

	// The unique index is on the lowercased name.
	_, err := uc.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{Name: "CARDIOLOGY"})
	if !errors.Is(err, ErrDepartmentNameExists) {
		t.Fatalf("expected ErrDepartmentNameExists, got %v", err)
	}
}

func TestGetDepartmentNotFound(t *testing.T) {
	uc, _ := newDepartmentFixture(t)

	_, err := uc.GetDepartment(context.Background(), uuid.New())
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestDeleteDepartment(t *testing.T) {
	uc, departmentRepo := newDepartmentFixture(t)
	id := uuid.New()
	departmentRepo.departments = []entity.Department{{ID: id, Name: "Cardiology"}}

	if err := uc.DeleteDepartment(context.Background(), id); err != nil {
		t.Fatalf("DeleteDepartment: %v", err)
	}
	if err := uc.DeleteDepartment(context.Background(), id); !errors.Is(err, ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestDeleteDepartmentLeavesDanglingReference(t *testing.T) {
	departmentRepo := &fakeDepartmentRepo{}
	appointmentRepo := &fakeAppointmentRepo{}
	patientRepo := &fakePatientRepo{}
	auditService, _ := newTestAuditService()
	db := newTestDB(t)
	log := newTestLogger()
	departmentUC := NewDepartmentUsecase(db, log, departmentRepo, auditService)
	appointmentUC := NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, departmentRepo, auditService)

	departmentID := uuid.New()
	departmentRepo.departments = []entity.Department{{ID: departmentID, Name: "Cardiology"}}
	appointmentID := uuid.New()
	appointmentRepo.appointments = []entity.Appointment{{
		ID:           appointmentID,
		PatientID:    uuid.New(),
		DepartmentID: &departmentID,
		Status:       entity.AppointmentStatusScheduled,
	}}

	if err := departmentUC.DeleteDepartment(context.Background(), departmentID); err != nil {
		t.Fatalf("DeleteDepartment: %v", err)
	}

	// The appointment keeps the now-dangling department id.
	resp, err := appointmentUC.GetAppointment(context.Background(), appointmentID)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if resp.DepartmentID == nil || *resp.DepartmentID != departmentID {
		t.Error("appointment must keep the dangling department reference")
	}
}

func TestUpdateDepartment(t *testing.T) {
	uc, departmentRepo := newDepartmentFixture(t)
	id := uuid.New()
	departmentRepo.departments = []entity.Department{{ID: id, Name: "Cardiology", Status: "Active"}}

	name := "Cardiovascular Medicine"
	resp, err := uc.UpdateDepartment(context.Background(), id, &dto.UpdateDepartmentRequest{Name: &name})
	if err != nil {
		t.Fatalf("UpdateDepartment: %v", err)
	}
	if resp.Name != name {
		t.Errorf("expected name %q, got %q", name, resp.Name)
	}
}
