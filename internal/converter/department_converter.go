package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// DepartmentToResponse converts a Department entity to DepartmentResponse DTO
func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}

	response := &dto.DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
		DoctorID:    department.DoctorID,
		Floor:       department.Floor,
		Phone:       department.Phone,
		Email:       department.Email,
		Status:      department.Status,
		CreatedAt:   department.CreatedAt,
		UpdatedAt:   department.UpdatedAt,
	}

	if department.Doctor != nil {
		response.Doctor = DoctorToResponse(department.Doctor)
	}

	return response
}

// DepartmentsToResponses converts a slice of Department entities
func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *DepartmentToResponse(&departments[i])
	}
	return responses
}

// DepartmentUpdateColumns builds the column set for a partial department update.
func DepartmentUpdateColumns(req *dto.UpdateDepartmentRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.DoctorID != nil {
		doctorID, err := uuid.Parse(*req.DoctorID)
		if err != nil {
			return nil, err
		}
		fields["doctor_id"] = doctorID
	}
	if req.Floor != nil {
		fields["floor"] = *req.Floor
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	return fields, nil
}
