package router

import (
	"time"

	"gym_crm_backend/internal/handlers"
	"gym_crm_backend/internal/middleware"
	"gym_crm_backend/internal/services"
	"gym_crm_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. Login is public; every
// other route sits behind JWT authentication.
func Setup(engine *gin.Engine, gymStore *store.GymStore, authService services.AuthService) {
	// Initialize Services
	reportService := services.NewReportService(gymStore, time.Now)
	alertService := services.NewAlertService(gymStore, time.Now)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewGymProfileHandler(gymStore)
	memberHandler := handlers.NewMemberHandler(gymStore)
	planHandler := handlers.NewPlanHandler(gymStore)
	attendanceHandler := handlers.NewAttendanceHandler(gymStore)
	paymentHandler := handlers.NewPaymentHandler(gymStore)
	inquiryHandler := handlers.NewInquiryHandler(gymStore)
	expenseHandler := handlers.NewExpenseHandler(gymStore)
	reportHandler := handlers.NewReportHandler(reportService, alertService)
	exportHandler := handlers.NewExportHandler(gymStore)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	// Authenticated routes. Only the operator role is ever issued, so the
	// role check is a backstop against tokens minted elsewhere.
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	authenticated.Use(middleware.RoleAuthMiddleware(services.OperatorRole))
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupResourceRoutes(authenticated, profileHandler, memberHandler, planHandler,
			attendanceHandler, paymentHandler, inquiryHandler, expenseHandler,
			reportHandler, exportHandler)
	}
}

// SetupPublicAuthRoutes registers the routes reachable without a token.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/login", authHandler.Login)
}

// SetupAuthenticatedAuthRoutes registers the auth routes that require a token.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupResourceRoutes registers every domain route on the given group. Tests
// call this directly on an unprotected group.
func SetupResourceRoutes(group *gin.RouterGroup,
	profileHandler *handlers.GymProfileHandler,
	memberHandler *handlers.MemberHandler,
	planHandler *handlers.PlanHandler,
	attendanceHandler *handlers.AttendanceHandler,
	paymentHandler *handlers.PaymentHandler,
	inquiryHandler *handlers.InquiryHandler,
	expenseHandler *handlers.ExpenseHandler,
	reportHandler *handlers.ReportHandler,
	exportHandler *handlers.ExportHandler,
) {
	SetupGymProfileRoutes(group, profileHandler)
	SetupMemberRoutes(group, memberHandler)
	SetupPlanRoutes(group, planHandler)
	SetupAttendanceRoutes(group, attendanceHandler)
	SetupPaymentRoutes(group, paymentHandler)
	SetupInquiryRoutes(group, inquiryHandler)
	SetupExpenseRoutes(group, expenseHandler)
	SetupReportRoutes(group, reportHandler)
	SetupExportRoutes(group, exportHandler)
}
