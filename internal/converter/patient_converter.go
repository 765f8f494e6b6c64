package converter

import (
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		FirstName:        patient.FirstName,
		LastName:         patient.LastName,
		Email:            patient.Email,
		Phone:            patient.Phone,
		DateOfBirth:      patient.DateOfBirth,
		Gender:           patient.Gender,
		BloodGroup:       patient.BloodGroup,
		Address:          patient.Address,
		EmergencyContact: patient.EmergencyContact,
		Insurance:        patient.Insurance,
		MedicalHistory:   patient.MedicalHistory,
		Status:           patient.Status,
		LastVisit:        patient.LastVisit,
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientUpdateColumns builds the column set for a partial patient update.
// Only non-nil fields of the request are included.
func PatientUpdateColumns(req *dto.UpdatePatientRequest) (map[string]interface{}, error) {
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
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		fields["date_of_birth"] = dob
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.BloodGroup != nil {
		fields["blood_group"] = *req.BloodGroup
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.EmergencyContact != nil {
		fields["emergency_contact"] = *req.EmergencyContact
	}
	if req.Insurance != nil {
		fields["insurance"] = *req.Insurance
	}
	if req.MedicalHistory != nil {
		fields["medical_history"] = entity.StringList(*req.MedicalHistory)
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	return fields, nil
}
