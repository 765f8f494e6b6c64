package usecase

import (
	"context"
	"testing"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

func TestGetDashboardStats(t *testing.T) {
	patientRepo := &fakePatientRepo{}
	doctorRepo := &fakeDoctorRepo{}
	departmentRepo := &fakeDepartmentRepo{}
	appointmentRepo := &fakeAppointmentRepo{}
	uc := NewDashboardUsecase(newTestDB(t), newTestLogger(), patientRepo, doctorRepo, departmentRepo, appointmentRepo)

	patientRepo.patients = []entity.Patient{
		{ID: uuid.New(), FirstName: "Alice", LastName: "Nguyen", Email: "a@example.com"},
		{ID: uuid.New(), FirstName: "Bob", LastName: "Jones", Email: "b@example.com"},
	}
	doctorRepo.doctors = []entity.Doctor{
		{ID: uuid.New(), FirstName: "Greg", LastName: "House", Email: "g@example.com"},
	}
	departmentRepo.departments = []entity.Department{
		{ID: uuid.New(), Name: "Cardiology"},
		{ID: uuid.New(), Name: "Neurology"},
		{ID: uuid.New(), Name: "Oncology"},
	}

	// Seven appointments so the recent list is capped at five. The
	// last-created one has a preloaded patient and doctor; the others
	// exercise the missing-doctor rendering.
	for i := 0; i < 6; i++ {
		if err := appointmentRepo.Create(nil, &entity.Appointment{
			PatientID: patientRepo.patients[0].ID,
			Status:    entity.AppointmentStatusScheduled,
			Patient:   &patientRepo.patients[0],
		}); err != nil {
			t.Fatalf("seed appointment: %v", err)
		}
	}
	if err := appointmentRepo.Create(nil, &entity.Appointment{
		PatientID: patientRepo.patients[1].ID,
		Status:    entity.AppointmentStatusCompleted,
		Time:      "09:00 AM",
		Patient:   &patientRepo.patients[1],
		Doctor:    &doctorRepo.doctors[0],
	}); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	stats, err := uc.GetDashboardStats(context.Background())
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}

	if stats.Overview.TotalPatients != 2 {
		t.Errorf("totalPatients: expected 2, got %d", stats.Overview.TotalPatients)
	}
	if stats.Overview.TotalDoctors != 1 {
		t.Errorf("totalDoctors: expected 1, got %d", stats.Overview.TotalDoctors)
	}
	if stats.Overview.Appointments != 7 {
		t.Errorf("appointments: expected 7, got %d", stats.Overview.Appointments)
	}
	if stats.Overview.Departments != 3 {
		t.Errorf("departments: expected 3, got %d", stats.Overview.Departments)
	}

	if len(stats.RecentAppointments) != 5 {
		t.Fatalf("expected 5 recent appointments, got %d", len(stats.RecentAppointments))
	}

	newest := stats.RecentAppointments[0]
	if newest.Patient != "Bob Jones" {
		t.Errorf("expected newest first, got patient %q", newest.Patient)
	}
	if newest.Doctor != "Dr. Greg House" {
		t.Errorf("unexpected doctor rendering %q", newest.Doctor)
	}
	if newest.Status != string(entity.AppointmentStatusCompleted) {
		t.Errorf("unexpected status %q", newest.Status)
	}

	// Appointments without a doctor still render the prefix.
	if stats.RecentAppointments[1].Doctor != "Dr.  " {
		t.Errorf("expected empty doctor name with prefix, got %q", stats.RecentAppointments[1].Doctor)
	}
}
