package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/agms/agms-backend/internal/app/controllers"
	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	approvalController *controllers.ApprovalController,
	clearanceController *controllers.ClearanceController,
	eligibilityController *controllers.EligibilityController,
	honorsController *controllers.HonorsController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *middleware.TokenBucket,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)

		// Graduation request pipeline. Reads are open to every
		// authenticated user (students are ownership-checked in the
		// service); decisions are restricted to approval-chain roles.
		requests := authenticated.Group("/requests")
		{
			requests.GET("/:studentId", approvalController.GetRequest)

			requestsApproverProtected := requests.Group("")
			requestsApproverProtected.Use(authMiddleware.RoleRequired(
				models.RoleAdvisor,
				models.RoleDepartmentSecretary,
				models.RoleFacultyDeansOffice,
				models.RoleStudentAffairs,
			))
			{
				requestsApproverProtected.POST("/:studentId/advance", approvalController.Advance)
			}

			requestsStaffProtected := requests.Group("")
			requestsStaffProtected.Use(authMiddleware.StaffRequired())
			{
				requestsStaffProtected.GET("/:studentId/audit", approvalController.GetAudit)
			}
		}

		// Clearance aggregation. Flag writes restricted to office roles;
		// finalize restricted to Student Affairs.
		clearance := authenticated.Group("/clearance")
		{
			clearance.GET("/:studentId", clearanceController.GetClearance)

			clearanceOfficeProtected := clearance.Group("")
			clearanceOfficeProtected.Use(authMiddleware.RoleRequired(
				models.RoleLibrary,
				models.RoleSKS,
				models.RoleDOITP,
				models.RoleCareerOffice,
			))
			{
				clearanceOfficeProtected.POST("/:studentId", clearanceController.SetClearance)
			}

			clearanceFinalizeProtected := clearance.Group("")
			clearanceFinalizeProtected.Use(authMiddleware.RoleRequired(models.RoleStudentAffairs))
			{
				clearanceFinalizeProtected.POST("/:studentId/finalize", clearanceController.Finalize)
			}

			clearanceStaffProtected := clearance.Group("")
			clearanceStaffProtected.Use(authMiddleware.StaffRequired())
			{
				clearanceStaffProtected.GET("/:studentId/office/:office", clearanceController.GetOfficeStatus)
			}
		}

		// Eligibility evaluation (read-only)
		students := authenticated.Group("/students")
		{
			students.GET("/:studentId/eligibility", eligibilityController.Evaluate)
		}

		// Honors list. Listing is staff-wide; finalize is rectorate only
		// and double-checked in the service.
		honors := authenticated.Group("/honors")
		honors.Use(authMiddleware.StaffRequired())
		{
			honors.GET("", honorsController.List)

			honorsRectorateProtected := honors.Group("")
			honorsRectorateProtected.Use(authMiddleware.RoleRequired(models.RoleRectorate))
			{
				honorsRectorateProtected.POST("/finalize", honorsController.Finalize)
			}
		}

		// Advisor messaging
		messages := authenticated.Group("/messages")
		{
			messages.GET("/inbox", messageController.Inbox)
			messages.PUT("/:id/read", messageController.MarkRead)

			messagesAdvisorProtected := messages.Group("")
			messagesAdvisorProtected.Use(authMiddleware.RoleRequired(models.RoleAdvisor))
			{
				messagesAdvisorProtected.POST("", messageController.Send)
			}
		}
	}
}
