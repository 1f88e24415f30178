package services

import (
	"context"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/app/repositories"
	"github.com/agms/agms-backend/internal/config"
	"github.com/agms/agms-backend/internal/pkg/auth"
	"github.com/agms/agms-backend/internal/pkg/notification"
)

// The services declare the narrow store interfaces they need; the pgx
// repositories satisfy them. Keeping the interfaces here lets the workflow
// logic be exercised against in-memory stores.

// GraduationRequestStore persists graduation requests
type GraduationRequestStore interface {
	GetByStudentID(ctx context.Context, studentID int64) (*models.GraduationRequest, error)
	UpdateAtomic(ctx context.Context, studentID int64, fn func(*models.GraduationRequest) error) (*models.GraduationRequest, error)
}

// ClearanceStore persists clearance records
type ClearanceStore interface {
	GetByStudentID(ctx context.Context, studentID int64) (*models.ClearanceRecord, error)
	UpdateAtomic(ctx context.Context, studentID int64, fn func(*models.ClearanceRecord) error) (*models.ClearanceRecord, error)
}

// StudentStore reads student records
type StudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// DepartmentStore reads department records
type DepartmentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByCode(ctx context.Context, code string) (*models.Department, error)
}

// AuditStore appends and reads audit events
type AuditStore interface {
	Record(ctx context.Context, event *models.AuditEvent) error
	ListByStudent(ctx context.Context, studentID int64, action *models.AuditAction, limit int) ([]*models.AuditEvent, error)
}

// MessageStore persists advisor messages
type MessageStore interface {
	Create(ctx context.Context, message *models.Message) error
	GetInbox(ctx context.Context, recipientID int64) ([]*models.Message, error)
	MarkRead(ctx context.Context, messageID, recipientID int64) error
}

// HonorsStore reads candidates and records list finalization
type HonorsStore interface {
	ListCandidates(ctx context.Context, minGPA float64) ([]*models.HonorsEntry, error)
	GetFinalized(ctx context.Context) (*models.HonorsList, error)
	Finalize(ctx context.Context, finalizedBy int64) (*models.HonorsList, error)
}

// Services holds all the service instances
type Services struct {
	AuthService        *AuthService
	ApprovalService    *ApprovalService
	ClearanceService   *ClearanceService
	EligibilityService *EligibilityService
	HonorsService      *HonorsService
	MessageService     *MessageService
	AuditService       *AuditService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, cfg *config.Config, jwtService *auth.JWTService, notifier notification.Notifier) *Services {
	thresholds := models.HonorsThresholds{
		SummaCumLaude: cfg.Graduation.Honors.SummaCumLaude,
		MagnaCumLaude: cfg.Graduation.Honors.MagnaCumLaude,
		CumLaude:      cfg.Graduation.Honors.CumLaude,
	}

	return &Services{
		AuthService: NewAuthService(repos.UserRepository, jwtService),
		ApprovalService: NewApprovalService(
			repos.GraduationRequestRepository,
			repos.StudentRepository,
			repos.AuditRepository,
			notifier,
		),
		ClearanceService: NewClearanceService(
			repos.ClearanceRepository,
			repos.StudentRepository,
			repos.AuditRepository,
			notifier,
		),
		EligibilityService: NewEligibilityService(
			repos.StudentRepository,
			repos.DepartmentRepository,
			cfg.Graduation.DefaultDepartment,
		),
		HonorsService: NewHonorsService(
			repos.HonorsRepository,
			repos.AuditRepository,
			notifier,
			thresholds,
		),
		MessageService: NewMessageService(repos.MessageRepository, repos.StudentRepository),
		AuditService:   NewAuditService(repos.AuditRepository, repos.StudentRepository),
	}
}
