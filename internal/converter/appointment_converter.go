package converter

import (
	"fmt"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		DepartmentID:    appointment.DepartmentID,
		AppointmentDate: appointment.AppointmentDate,
		Time:            appointment.Time,
		Reason:          appointment.Reason,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		Duration:        appointment.Duration,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Patient != nil {
		response.Patient = PatientToResponse(appointment.Patient)
	}
	if appointment.Doctor != nil {
		response.Doctor = DoctorToResponse(appointment.Doctor)
	}
	if appointment.Department != nil {
		response.Department = DepartmentToResponse(appointment.Department)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentToRecentResponse builds the dashboard display summary.
// An appointment without a doctor renders the "Dr." prefix with empty
// name parts; the data model allows a missing doctor even though the
// dashboard assumes one.
func AppointmentToRecentResponse(appointment *entity.Appointment) dto.RecentAppointmentResponse {
	var patientFirst, patientLast, doctorFirst, doctorLast string
	if appointment.Patient != nil {
		patientFirst = appointment.Patient.FirstName
		patientLast = appointment.Patient.LastName
	}
	if appointment.Doctor != nil {
		doctorFirst = appointment.Doctor.FirstName
		doctorLast = appointment.Doctor.LastName
	}

	return dto.RecentAppointmentResponse{
		ID:      appointment.ID,
		Patient: fmt.Sprintf("%s %s", patientFirst, patientLast),
		Doctor:  fmt.Sprintf("Dr. %s %s", doctorFirst, doctorLast),
		Time:    appointment.Time,
		Status:  string(appointment.Status),
	}
}

// AppointmentUpdateColumns builds the column set for a partial
// appointment update. Any status value may be set here; only the
// dedicated cancel operation is restricted to Cancelled.
func AppointmentUpdateColumns(req *dto.UpdateAppointmentRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if req.DoctorID != nil {
		doctorID, err := uuid.Parse(*req.DoctorID)
		if err != nil {
			return nil, err
		}
		fields["doctor_id"] = doctorID
	}
	if req.DepartmentID != nil {
		departmentID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return nil, err
		}
		fields["department_id"] = departmentID
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, err
		}
		fields["appointment_date"] = date
	}
	if req.Time != nil {
		fields["time"] = *req.Time
	}
	if req.Reason != nil {
		fields["reason"] = *req.Reason
	}
	if req.Status != nil {
		fields["status"] = entity.AppointmentStatus(*req.Status)
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	return fields, nil
}
