package usecase

import (
	"context"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newTestDB returns a *gorm.DB backed by the dummy dialector. The fake
// repositories ignore the handle; the usecases only thread it through.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	if err != nil {
		t.Fatalf("open dummy db: %v", err)
	}
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func duplicateKeyError(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// fakeAuditLogRepo records audit entries in memory.
type fakeAuditLogRepo struct {
	logs []entity.AuditLog
}

func (r *fakeAuditLogRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	r.logs = append(r.logs, *log)
	return nil
}

func newTestAuditService() (service.AuditService, *fakeAuditLogRepo) {
	repo := &fakeAuditLogRepo{}
	return service.NewAuditService(newTestLogger(), repo), repo
}

// fakePatientRepo is an in-memory PatientRepository with a unique
// index on email, mirroring the store's behavior.
type fakePatientRepo struct {
	patients []entity.Patient
}

func (r *fakePatientRepo) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	return append([]entity.Patient(nil), r.patients...), nil
}

func (r *fakePatientRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	for i := range r.patients {
		if r.patients[i].ID == id {
			p := r.patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) FindByEmail(db *gorm.DB, email string) (*entity.Patient, error) {
	for i := range r.patients {
		if r.patients[i].Email == email {
			p := r.patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) Search(db *gorm.DB, filter entity.SearchFilter) ([]entity.Patient, error) {
	q := strings.ToLower(filter.Query)
	var out []entity.Patient
	for _, p := range r.patients {
		if strings.Contains(strings.ToLower(p.FirstName), q) ||
			strings.Contains(strings.ToLower(p.LastName), q) ||
			strings.Contains(strings.ToLower(p.Email), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	for i := range r.patients {
		if r.patients[i].Email == patient.Email {
			return duplicateKeyError("idx_patients_email")
		}
	}
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = patient.CreatedAt
	r.patients = append(r.patients, *patient)
	return nil
}

func (r *fakePatientRepo) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	for i := range r.patients {
		if r.patients[i].ID != id {
			continue
		}
		if email, ok := fields["email"].(string); ok {
			for j := range r.patients {
				if j != i && r.patients[j].Email == email {
					return 0, duplicateKeyError("idx_patients_email")
				}
			}
			r.patients[i].Email = email
		}
		if v, ok := fields["first_name"].(string); ok {
			r.patients[i].FirstName = v
		}
		if v, ok := fields["last_name"].(string); ok {
			r.patients[i].LastName = v
		}
		if v, ok := fields["phone"].(string); ok {
			r.patients[i].Phone = v
		}
		if v, ok := fields["status"].(string); ok {
			r.patients[i].Status = v
		}
		r.patients[i].UpdatedAt = time.Now()
		return 1, nil
	}
	return 0, nil
}

func (r *fakePatientRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	for i := range r.patients {
		if r.patients[i].ID == id {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakePatientRepo) Count(db *gorm.DB) (int64, error) {
	return int64(len(r.patients)), nil
}

// fakeDoctorRepo is an in-memory DoctorRepository.
type fakeDoctorRepo struct {
	doctors []entity.Doctor
}

func (r *fakeDoctorRepo) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	return append([]entity.Doctor(nil), r.doctors...), nil
}

func (r *fakeDoctorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			d := r.doctors[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindByDepartmentID(db *gorm.DB, departmentID uuid.UUID) ([]entity.Doctor, error) {
	var out []entity.Doctor
	for _, d := range r.doctors {
		if d.DepartmentID != nil && *d.DepartmentID == departmentID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDoctorRepo) Search(db *gorm.DB, filter entity.SearchFilter) ([]entity.Doctor, error) {
	q := strings.ToLower(filter.Query)
	var out []entity.Doctor
	for _, d := range r.doctors {
		if strings.Contains(strings.ToLower(d.FirstName), q) ||
			strings.Contains(strings.ToLower(d.LastName), q) ||
			strings.Contains(strings.ToLower(d.Specialization), q) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	for i := range r.doctors {
		if r.doctors[i].Email == doctor.Email {
			return duplicateKeyError("idx_doctors_email")
		}
	}
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	r.doctors = append(r.doctors, *doctor)
	return nil
}

func (r *fakeDoctorRepo) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	for i := range r.doctors {
		if r.doctors[i].ID != id {
			continue
		}
		if v, ok := fields["first_name"].(string); ok {
			r.doctors[i].FirstName = v
		}
		if v, ok := fields["last_name"].(string); ok {
			r.doctors[i].LastName = v
		}
		if v, ok := fields["specialization"].(string); ok {
			r.doctors[i].Specialization = v
		}
		if v, ok := fields["rating"].(float64); ok {
			r.doctors[i].Rating = v
		}
		if v, ok := fields["status"].(string); ok {
			r.doctors[i].Status = v
		}
		return 1, nil
	}
	return 0, nil
}

func (r *fakeDoctorRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			r.doctors = append(r.doctors[:i], r.doctors[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeDoctorRepo) Count(db *gorm.DB) (int64, error) {
	return int64(len(r.doctors)), nil
}

// fakeDepartmentRepo is an in-memory DepartmentRepository whose name
// lookup is case-insensitive but exact, like the store's.
type fakeDepartmentRepo struct {
	departments []entity.Department
}

func (r *fakeDepartmentRepo) FindAll(db *gorm.DB) ([]entity.Department, error) {
	return append([]entity.Department(nil), r.departments...), nil
}

func (r *fakeDepartmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Department, error) {
	for i := range r.departments {
		if r.departments[i].ID == id {
			d := r.departments[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (r *fakeDepartmentRepo) FindByName(db *gorm.DB, name string) (*entity.Department, error) {
	for i := range r.departments {
		if strings.EqualFold(r.departments[i].Name, name) {
			d := r.departments[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (r *fakeDepartmentRepo) Create(db *gorm.DB, department *entity.Department) error {
	for i := range r.departments {
		if strings.EqualFold(r.departments[i].Name, department.Name) {
			return duplicateKeyError("idx_departments_name")
		}
	}
	if department.ID == uuid.Nil {
		department.ID = uuid.New()
	}
	r.departments = append(r.departments, *department)
	return nil
}

func (r *fakeDepartmentRepo) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	for i := range r.departments {
		if r.departments[i].ID != id {
			continue
		}
		if name, ok := fields["name"].(string); ok {
			for j := range r.departments {
				if j != i && strings.EqualFold(r.departments[j].Name, name) {
					return 0, duplicateKeyError("idx_departments_name")
				}
			}
			r.departments[i].Name = name
		}
		if v, ok := fields["status"].(string); ok {
			r.departments[i].Status = v
		}
		return 1, nil
	}
	return 0, nil
}

func (r *fakeDepartmentRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	for i := range r.departments {
		if r.departments[i].ID == id {
			r.departments = append(r.departments[:i], r.departments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeDepartmentRepo) Count(db *gorm.DB) (int64, error) {
	return int64(len(r.departments)), nil
}

// fakeAppointmentRepo is an in-memory AppointmentRepository.
type fakeAppointmentRepo struct {
	appointments []entity.Appointment
	seq          int
}

func (r *fakeAppointmentRepo) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	return append([]entity.Appointment(nil), r.appointments...), nil
}

func (r *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			a := r.appointments[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.DoctorID != nil && *a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindRecent(db *gorm.DB, limit int) ([]entity.Appointment, error) {
	out := append([]entity.Appointment(nil), r.appointments...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	// Monotonic creation times so FindRecent ordering is deterministic.
	r.seq++
	appointment.CreatedAt = time.Unix(int64(r.seq), 0)
	appointment.UpdatedAt = appointment.CreatedAt
	r.appointments = append(r.appointments, *appointment)
	return nil
}

func (r *fakeAppointmentRepo) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	for i := range r.appointments {
		if r.appointments[i].ID != id {
			continue
		}
		if v, ok := fields["status"].(entity.AppointmentStatus); ok {
			r.appointments[i].Status = v
		}
		if v, ok := fields["notes"].(string); ok {
			r.appointments[i].Notes = v
		}
		if v, ok := fields["time"].(string); ok {
			r.appointments[i].Time = v
		}
		if v, ok := fields["reason"].(string); ok {
			r.appointments[i].Reason = v
		}
		if v, ok := fields["duration"].(int); ok {
			r.appointments[i].Duration = v
		}
		if v, ok := fields["appointment_date"].(time.Time); ok {
			r.appointments[i].AppointmentDate = v
		}
		if v, ok := fields["doctor_id"].(uuid.UUID); ok {
			id := v
			r.appointments[i].DoctorID = &id
		}
		if v, ok := fields["department_id"].(uuid.UUID); ok {
			id := v
			r.appointments[i].DepartmentID = &id
		}
		return 1, nil
	}
	return 0, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeAppointmentRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeAppointmentRepo) Count(db *gorm.DB) (int64, error) {
	return int64(len(r.appointments)), nil
}

func (r *fakeAppointmentRepo) CountByStatus(db *gorm.DB, status entity.AppointmentStatus) (int64, error) {
	var n int64
	for _, a := range r.appointments {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users []entity.User
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	for i := range r.users {
		if r.users[i].Email == user.Email {
			return duplicateKeyError("idx_users_email")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// fakeTokenStore tracks issued tokens in a map.
type fakeTokenStore struct {
	tokens map[string]bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]bool{}}
}

func (s *fakeTokenStore) key(userID uuid.UUID, tokenID string) string {
	return userID.String() + ":" + tokenID
}

func (s *fakeTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.tokens[s.key(userID, tokenID)] = true
	return nil
}

func (s *fakeTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return s.tokens[s.key(userID, tokenID)], nil
}

func (s *fakeTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	delete(s.tokens, s.key(userID, tokenID))
	return nil
}
