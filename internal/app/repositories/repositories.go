package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository              *UserRepository
	StudentRepository           *StudentRepository
	DepartmentRepository        *DepartmentRepository
	GraduationRequestRepository *GraduationRequestRepository
	ClearanceRepository         *ClearanceRepository
	MessageRepository           *MessageRepository
	AuditRepository             *AuditRepository
	HonorsRepository            *HonorsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:              NewUserRepository(db),
		StudentRepository:           NewStudentRepository(db),
		DepartmentRepository:        NewDepartmentRepository(db),
		GraduationRequestRepository: NewGraduationRequestRepository(db),
		ClearanceRepository:         NewClearanceRepository(db),
		MessageRepository:           NewMessageRepository(db),
		AuditRepository:             NewAuditRepository(db),
		HonorsRepository:            NewHonorsRepository(db),
	}
}
