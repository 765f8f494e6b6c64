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
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentNameExists = errors.New("department name already exists")
)

type DepartmentUsecase interface {
	GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*dto.DepartmentResponse, error)
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id uuid.UUID, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) error
}

type departmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
	auditService   service.AuditService
}

func NewDepartmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	auditService service.AuditService,
) DepartmentUsecase {
	return &departmentUsecase{
		db:             db,
		log:            log,
		departmentRepo: departmentRepo,
		auditService:   auditService,
	}
}

func (u *departmentUsecase) GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := u.departmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	return &dto.DepartmentListResponse{
		Departments: converter.DepartmentsToResponses(departments),
		Total:       len(departments),
	}, nil
}

func (u *departmentUsecase) GetDepartment(ctx context.Context, id uuid.UUID) (*dto.DepartmentResponse, error) {
	department, err := u.departmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find department %s: %+v", id, err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	department := &entity.Department{
		Name:        req.Name,
		Description: req.Description,
		Floor:       req.Floor,
		Phone:       req.Phone,
		Email:       req.Email,
		Status:      "Active",
	}

	if req.DoctorID != nil {
		doctorID, err := uuid.Parse(*req.DoctorID)
		if err != nil {
			return nil, ErrInvalidUpdateField
		}
		department.DoctorID = &doctorID
	}

	if err := u.departmentRepo.Create(u.db.WithContext(ctx), department); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDepartmentNameExists
		}
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, u.db, nil, entity.AuditActionDepartmentCreate, "department", department.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to audit department creation: %+v", err)
	}

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) UpdateDepartment(ctx context.Context, id uuid.UUID, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	fields, err := converter.DepartmentUpdateColumns(req)
	if err != nil {
		return nil, ErrInvalidUpdateField
	}

	db := u.db.WithContext(ctx)

	if len(fields) > 0 {
		rows, err := u.departmentRepo.UpdateFields(db, id, fields)
		if err != nil {
			if isDuplicateKeyError(err, "name") {
				return nil, ErrDepartmentNameExists
			}
			u.log.Warnf("Failed to update department %s: %+v", id, err)
			return nil, err
		}
		if rows == 0 {
			return nil, ErrDepartmentNotFound
		}
	}

	department, err := u.departmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to reload department %s: %+v", id, err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	return converter.DepartmentToResponse(department), nil
}

// DeleteDepartment removes the record outright. Appointments and doctors
// referencing it keep the now-dangling identifier; there is no cascade
// and no restrict policy.
func (u *departmentUsecase) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	rows, err := u.departmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete department %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrDepartmentNotFound
	}

	if err := u.auditService.Log(ctx, u.db, nil, entity.AuditActionDepartmentDelete, "department", id.String(), nil); err != nil {
		u.log.Warnf("Failed to audit department deletion: %+v", err)
	}

	return nil
}
