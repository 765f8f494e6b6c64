package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:             doctor.ID,
		FirstName:      doctor.FirstName,
		LastName:       doctor.LastName,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Specialization: doctor.Specialization,
		DepartmentID:   doctor.DepartmentID,
		Experience:     doctor.Experience,
		Qualifications: doctor.Qualifications,
		Bio:            doctor.Bio,
		Rating:         doctor.Rating,
		TotalPatients:  doctor.TotalPatients,
		AvailableSlots: doctor.AvailableSlots,
		Status:         doctor.Status,
		CreatedAt:      doctor.CreatedAt,
		UpdatedAt:      doctor.UpdatedAt,
	}

	if doctor.Department != nil {
		response.Department = DepartmentToResponse(doctor.Department)
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorUpdateColumns builds the column set for a partial doctor update.
func DoctorUpdateColumns(req *dto.UpdateDoctorRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Specialization != nil {
		fields["specialization"] = *req.Specialization
	}
	if req.DepartmentID != nil {
		departmentID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return nil, err
		}
		fields["department_id"] = departmentID
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.Qualifications != nil {
		fields["qualifications"] = entity.StringList(*req.Qualifications)
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.TotalPatients != nil {
		fields["total_patients"] = *req.TotalPatients
	}
	if req.AvailableSlots != nil {
		fields["available_slots"] = entity.StringList(*req.AvailableSlots)
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	return fields, nil
}
