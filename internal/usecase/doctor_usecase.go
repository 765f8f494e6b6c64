package usecase

import (
	"context"
	"errors"

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
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorEmailExists = errors.New("doctor email already exists")
)

type DoctorUsecase interface {
	GetDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	GetDoctorsByDepartment(ctx context.Context, departmentID uuid.UUID) (*dto.DoctorListResponse, error)
	SearchDoctors(ctx context.Context, query string) (*dto.DoctorListResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) GetDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctorsByDepartment(ctx context.Context, departmentID uuid.UUID) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindByDepartmentID(u.db.WithContext(ctx), departmentID)
	if err != nil {
		u.log.Warnf("Failed to list doctors for department %s: %+v", departmentID, err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) SearchDoctors(ctx context.Context, query string) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.Search(u.db.WithContext(ctx), entity.SearchFilter{Query: query})
	if err != nil {
		u.log.Warnf("Failed to search doctors %q: %+v", query, err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Qualifications: entity.StringList(req.Qualifications),
		Bio:            req.Bio,
		AvailableSlots: entity.StringList(req.AvailableSlots),
		Status:         "Active",
	}

	if req.DepartmentID != nil {
		departmentID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return nil, ErrInvalidUpdateField
		}
		doctor.DepartmentID = &departmentID
	}

	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, u.db, nil, entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to audit doctor creation: %+v", err)
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	fields, err := converter.DoctorUpdateColumns(req)
	if err != nil {
		return nil, ErrInvalidUpdateField
	}

	db := u.db.WithContext(ctx)

	if len(fields) > 0 {
		rows, err := u.doctorRepo.UpdateFields(db, id, fields)
		if err != nil {
			if isDuplicateKeyError(err, "email") {
				return nil, ErrDoctorEmailExists
			}
			u.log.Warnf("Failed to update doctor %s: %+v", id, err)
			return nil, err
		}
		if rows == 0 {
			return nil, ErrDoctorNotFound
		}
	}

	doctor, err := u.doctorRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to reload doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor removes the record outright. Appointments and departments
// referencing the doctor keep their now-dangling identifiers.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	rows, err := u.doctorRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrDoctorNotFound
	}

	if err := u.auditService.Log(ctx, u.db, nil, entity.AuditActionDoctorDelete, "doctor", id.String(), nil); err != nil {
		u.log.Warnf("Failed to audit doctor deletion: %+v", err)
	}

	return nil
}
