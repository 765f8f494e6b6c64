package dto

import "github.com/google/uuid"

// OverviewResponse holds independent full-collection counts.
type OverviewResponse struct {
	TotalPatients int64 `json:"totalPatients"`
	TotalDoctors  int64 `json:"totalDoctors"`
	Appointments  int64 `json:"appointments"`
	Departments   int64 `json:"departments"`
}

// RecentAppointmentResponse is a display summary of one recent appointment.
type RecentAppointmentResponse struct {
	ID      uuid.UUID `json:"id"`
	Patient string    `json:"patient"`
	Doctor  string    `json:"doctor"`
	Time    string    `json:"time"`
	Status  string    `json:"status"`
}

type DashboardStatsResponse struct {
	Overview           OverviewResponse            `json:"overview"`
	RecentAppointments []RecentAppointmentResponse `json:"recentAppointments"`
}
