package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const recentAppointmentLimit = 5

type DashboardUsecase interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	departmentRepo  repository.DepartmentRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
	appointmentRepo repository.AppointmentRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		departmentRepo:  departmentRepo,
		appointmentRepo: appointmentRepo,
	}
}

// GetDashboardStats computes the dashboard overview from scratch on
// every call: four independent full-collection counts plus the five
// most recently created appointments resolved to display strings.
func (u *dashboardUsecase) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	db := u.db.WithContext(ctx)

	totalPatients, err := u.patientRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	totalDoctors, err := u.doctorRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}
	totalAppointments, err := u.appointmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}
	totalDepartments, err := u.departmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count departments: %+v", err)
		return nil, err
	}

	recent, err := u.appointmentRepo.FindRecent(db, recentAppointmentLimit)
	if err != nil {
		u.log.Warnf("Failed to load recent appointments: %+v", err)
		return nil, err
	}

	recentResponses := make([]dto.RecentAppointmentResponse, len(recent))
	for i := range recent {
		recentResponses[i] = converter.AppointmentToRecentResponse(&recent[i])
	}

	return &dto.DashboardStatsResponse{
		Overview: dto.OverviewResponse{
			TotalPatients: totalPatients,
			TotalDoctors:  totalDoctors,
			Appointments:  totalAppointments,
			Departments:   totalDepartments,
		},
		RecentAppointments: recentResponses,
	}, nil
}
