package services

import (
	"context"
	"sync"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/apperrors"
)

// In-memory stores mirroring the locking behavior of the pgx repositories.

type fakeRequestStore struct {
	mu       sync.Mutex
	students *fakeStudentStore
	requests map[int64]*models.GraduationRequest
}

func newFakeRequestStore(students *fakeStudentStore) *fakeRequestStore {
	return &fakeRequestStore{
		students: students,
		requests: make(map[int64]*models.GraduationRequest),
	}
}

func (s *fakeRequestStore) GetByStudentID(_ context.Context, studentID int64) (*models.GraduationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	request, ok := s.requests[studentID]
	if !ok {
		return nil, nil
	}
	copied := *request
	return &copied, nil
}

func (s *fakeRequestStore) UpdateAtomic(ctx context.Context, studentID int64, fn func(*models.GraduationRequest) error) (*models.GraduationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if exists, _ := s.students.Exists(ctx, studentID); !exists {
		return nil, apperrors.ErrStudentNotFound
	}
	request, ok := s.requests[studentID]
	if !ok {
		request = models.NewGraduationRequest(studentID)
		s.requests[studentID] = request
	}
	if err := fn(request); err != nil {
		return nil, err
	}
	copied := *request
	return &copied, nil
}

type fakeClearanceStore struct {
	mu       sync.Mutex
	students *fakeStudentStore
	records  map[int64]*models.ClearanceRecord
}

func newFakeClearanceStore(students *fakeStudentStore) *fakeClearanceStore {
	return &fakeClearanceStore{
		students: students,
		records:  make(map[int64]*models.ClearanceRecord),
	}
}

func (s *fakeClearanceStore) GetByStudentID(_ context.Context, studentID int64) (*models.ClearanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[studentID]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (s *fakeClearanceStore) UpdateAtomic(ctx context.Context, studentID int64, fn func(*models.ClearanceRecord) error) (*models.ClearanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if exists, _ := s.students.Exists(ctx, studentID); !exists {
		return nil, apperrors.ErrStudentNotFound
	}
	record, ok := s.records[studentID]
	if !ok {
		record = models.NewClearanceRecord(studentID)
		s.records[studentID] = record
	}
	if err := fn(record); err != nil {
		return nil, err
	}
	copied := *record
	return &copied, nil
}

type fakeStudentStore struct {
	students map[int64]*models.Student
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	store := &fakeStudentStore{students: make(map[int64]*models.Student)}
	for _, student := range students {
		store.students[student.ID] = student
	}
	return store
}

func (s *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *fakeStudentStore) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	for _, student := range s.students {
		if student.UserID == userID {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.students[id]
	return ok, nil
}

type fakeDepartmentStore struct {
	departments map[string]*models.Department
}

func newFakeDepartmentStore(departments ...*models.Department) *fakeDepartmentStore {
	store := &fakeDepartmentStore{departments: make(map[string]*models.Department)}
	for _, department := range departments {
		store.departments[department.Code] = department
	}
	return store
}

func (s *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	for _, department := range s.departments {
		if department.ID == id {
			return department, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (s *fakeDepartmentStore) GetByCode(_ context.Context, code string) (*models.Department, error) {
	department, ok := s.departments[code]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return department, nil
}

type fakeAuditStore struct {
	mu     sync.Mutex
	events []*models.AuditEvent
}

func (s *fakeAuditStore) Record(_ context.Context, event *models.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *fakeAuditStore) ListByStudent(_ context.Context, studentID int64, action *models.AuditAction, _ int) ([]*models.AuditEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var events []*models.AuditEvent
	for _, event := range s.events {
		if event.StudentID == nil || *event.StudentID != studentID {
			continue
		}
		if action != nil && event.Action != *action {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

type fakeHonorsStore struct {
	candidates []*models.HonorsEntry
	finalized  *models.HonorsList
}

func (s *fakeHonorsStore) ListCandidates(_ context.Context, minGPA float64) ([]*models.HonorsEntry, error) {
	var entries []*models.HonorsEntry
	for _, candidate := range s.candidates {
		if candidate.GPA >= minGPA {
			copied := *candidate
			entries = append(entries, &copied)
		}
	}
	return entries, nil
}

func (s *fakeHonorsStore) GetFinalized(_ context.Context) (*models.HonorsList, error) {
	return s.finalized, nil
}

func (s *fakeHonorsStore) Finalize(_ context.Context, finalizedBy int64) (*models.HonorsList, error) {
	if s.finalized != nil {
		return nil, apperrors.ErrHonorsListFinalized
	}
	s.finalized = &models.HonorsList{ID: 1, FinalizedBy: finalizedBy}
	return s.finalized, nil
}

func testStudent(id, userID int64, department *models.Department) *models.Student {
	return &models.Student{
		ID:            id,
		UserID:        userID,
		StudentNumber: "270201001",
		DepartmentID:  department.ID,
		Department:    department,
	}
}

func cengDepartment() *models.Department {
	return &models.Department{
		ID:              1,
		Code:            "CENG",
		Name:            "Computer Engineering",
		EctsTotal:       150,
		MinGPA:          2.0,
		RequiredCourses: []string{"CENG111", "CENG112", "CENG113"},
	}
}
