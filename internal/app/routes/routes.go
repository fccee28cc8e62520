package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berk/parentportal/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	feeController *controllers.FeeController,
	examController *controllers.ExamController,
	schoolController *controllers.SchoolController,
	notificationController *controllers.NotificationController,
) {
	// Basic health check
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running")
	})

	api := router.Group("/api")

	// --- Auth and account routes ---
	api.POST("/login", authController.Login)
	api.POST("/update-fcm", authController.UpdateFCM)
	api.POST("/password/change", authController.ChangePassword)

	// --- Per-student record routes ---
	api.GET("/profile", studentController.GetProfile)
	api.GET("/attendance", studentController.GetAttendance)
	api.GET("/activities", studentController.GetActivities)
	api.GET("/exams/:studentId", examController.GetExams)
	api.GET("/fees/:earStudentId", feeController.GetFees)

	// --- School-wide routes ---
	api.GET("/announcements", schoolController.GetAnnouncements)
	api.GET("/years/active", schoolController.GetActiveYears)
	api.GET("/items", schoolController.GetItems)

	// --- Notification compatibility stubs ---
	api.POST("/subscribe", notificationController.Subscribe)
	api.POST("/send-notification", notificationController.SendNotification)
}
