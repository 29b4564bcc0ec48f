package router

import (
	"gym_crm_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupGymProfileRoutes sets up the gym profile routes.
func SetupGymProfileRoutes(group *gin.RouterGroup, profileHandler *handlers.GymProfileHandler) {
	profileRoutes := group.Group("/gym-profile")
	{
		profileRoutes.GET("", profileHandler.GetGymProfile)
		profileRoutes.PATCH("", profileHandler.UpdateGymProfile)
	}
}

// SetupMemberRoutes sets up the member routes.
func SetupMemberRoutes(group *gin.RouterGroup, memberHandler *handlers.MemberHandler) {
	memberRoutes := group.Group("/members")
	{
		memberRoutes.POST("", memberHandler.CreateMember)
		memberRoutes.GET("", memberHandler.GetMembers)
		memberRoutes.GET("/:id", memberHandler.GetMemberByID)
		memberRoutes.PATCH("/:id", memberHandler.UpdateMember)
		memberRoutes.DELETE("/:id", memberHandler.DeleteMember)
	}
}

// SetupPlanRoutes sets up the membership plan routes.
func SetupPlanRoutes(group *gin.RouterGroup, planHandler *handlers.PlanHandler) {
	planRoutes := group.Group("/plans")
	{
		planRoutes.POST("", planHandler.CreatePlan)
		planRoutes.GET("", planHandler.GetPlans)
		planRoutes.GET("/:id", planHandler.GetPlanByID)
		planRoutes.PATCH("/:id", planHandler.UpdatePlan)
		planRoutes.DELETE("/:id", planHandler.DeletePlan)
	}
}

// SetupAttendanceRoutes sets up the attendance routes, including the
// check-in and check-out shortcuts.
func SetupAttendanceRoutes(group *gin.RouterGroup, attendanceHandler *handlers.AttendanceHandler) {
	attendanceRoutes := group.Group("/attendance")
	{
		attendanceRoutes.POST("/check-in", attendanceHandler.CheckIn)
		attendanceRoutes.POST("/:id/check-out", attendanceHandler.CheckOut)
		attendanceRoutes.POST("", attendanceHandler.CreateAttendance)
		attendanceRoutes.GET("", attendanceHandler.GetAttendance)
		attendanceRoutes.GET("/:id", attendanceHandler.GetAttendanceByID)
		attendanceRoutes.PATCH("/:id", attendanceHandler.UpdateAttendance)
		attendanceRoutes.DELETE("/:id", attendanceHandler.DeleteAttendance)
	}
}

// SetupPaymentRoutes sets up the payment routes.
func SetupPaymentRoutes(group *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	paymentRoutes := group.Group("/payments")
	{
		paymentRoutes.POST("", paymentHandler.CreatePayment)
		paymentRoutes.GET("", paymentHandler.GetPayments)
		paymentRoutes.GET("/:id", paymentHandler.GetPaymentByID)
		paymentRoutes.GET("/:id/invoice", paymentHandler.GetPaymentInvoice)
		paymentRoutes.PATCH("/:id", paymentHandler.UpdatePayment)
		paymentRoutes.DELETE("/:id", paymentHandler.DeletePayment)
	}
}

// SetupInquiryRoutes sets up the inquiry routes, including follow-up notes
// and conversion to member.
func SetupInquiryRoutes(group *gin.RouterGroup, inquiryHandler *handlers.InquiryHandler) {
	inquiryRoutes := group.Group("/inquiries")
	{
		inquiryRoutes.POST("", inquiryHandler.CreateInquiry)
		inquiryRoutes.GET("", inquiryHandler.GetInquiries)
		inquiryRoutes.GET("/:id", inquiryHandler.GetInquiryByID)
		inquiryRoutes.PATCH("/:id", inquiryHandler.UpdateInquiry)
		inquiryRoutes.DELETE("/:id", inquiryHandler.DeleteInquiry)
		inquiryRoutes.POST("/:id/notes", inquiryHandler.AddNote)
		inquiryRoutes.POST("/:id/convert", inquiryHandler.ConvertToMember)
	}
}

// SetupExpenseRoutes sets up the expense routes.
func SetupExpenseRoutes(group *gin.RouterGroup, expenseHandler *handlers.ExpenseHandler) {
	expenseRoutes := group.Group("/expenses")
	{
		expenseRoutes.POST("", expenseHandler.CreateExpense)
		expenseRoutes.GET("", expenseHandler.GetExpenses)
		expenseRoutes.GET("/:id", expenseHandler.GetExpenseByID)
		expenseRoutes.PATCH("/:id", expenseHandler.UpdateExpense)
		expenseRoutes.DELETE("/:id", expenseHandler.DeleteExpense)
	}
}

// SetupReportRoutes sets up the report and alert routes.
func SetupReportRoutes(group *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := group.Group("/reports")
	{
		reportRoutes.GET("/dashboard", reportHandler.GetDashboardSummary)
		reportRoutes.GET("/financial-summary", reportHandler.GetFinancialSummary)
		reportRoutes.GET("/revenue-by-plan", reportHandler.GetRevenueByPlan)
		reportRoutes.GET("/expenses-by-category", reportHandler.GetExpensesByCategory)
		reportRoutes.GET("/members-per-plan", reportHandler.GetMembersPerPlan)
	}
	group.GET("/alerts", reportHandler.GetAlerts)
}

// SetupExportRoutes sets up the CSV export routes.
func SetupExportRoutes(group *gin.RouterGroup, exportHandler *handlers.ExportHandler) {
	exportRoutes := group.Group("/exports")
	{
		exportRoutes.GET("/members", exportHandler.ExportMembers)
		exportRoutes.GET("/attendance", exportHandler.ExportAttendance)
		exportRoutes.GET("/payments", exportHandler.ExportPayments)
		exportRoutes.GET("/inquiries", exportHandler.ExportInquiries)
		exportRoutes.GET("/financial-report", exportHandler.ExportFinancialReport)
	}
}
