package routes

import (
	"time"

	"ems-portal/internal/adapters/http/handlers"
	"ems-portal/internal/adapters/http/middleware"
	"ems-portal/internal/config"
	"ems-portal/internal/core/services"
	"ems-portal/internal/core/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, svc *services.Services, manager *session.Manager, board *session.RedirectBoard, cfg *config.Config) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	authHandler := handlers.NewAuthHandler(svc.AdminAuth, svc.EmployeeAuth, svc.Resets, manager, board)
	sessionHandler := handlers.NewSessionHandler(manager, board)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	employeeHandler := handlers.NewEmployeeHandler(svc.Employees, svc.EmployeeAuth)
	orgHandler := handlers.NewOrgHandler(svc.Org)
	resetHandler := handlers.NewPasswordResetHandler(svc.Resets)
	leaveHandler := handlers.NewLeaveHandler(svc.Leaves)
	taskHandler := handlers.NewTaskHandler(svc.Tasks)
	attendanceHandler := handlers.NewAttendanceHandler(svc.Attendance)
	notificationHandler := handlers.NewNotificationHandler(svc.Notifications)
	documentHandler := handlers.NewDocumentHandler(svc.Documents)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group; every request belongs to a client
	apiV1 := app.Group("/api/v1", middleware.ClientMiddleware(cfg))
	apiV1.Get("/", middleware.CacheControl(time.Hour), healthHandler.APIInfo)

	setupAuthRoutes(apiV1.Group("/auth", middleware.NoCacheHeaders()), authHandler)
	setupSessionRoutes(apiV1.Group("/session", middleware.NoCacheHeaders()), sessionHandler)

	adminRoutes := apiV1.Group("/admin", middleware.AdminGuard(manager))
	setupAdminRoutes(adminRoutes, dashboardHandler, employeeHandler, orgHandler, resetHandler,
		leaveHandler, taskHandler, attendanceHandler, notificationHandler, documentHandler)

	employeeRoutes := apiV1.Group("/employee", middleware.EmployeeGuard(manager))
	setupEmployeeRoutes(employeeRoutes, employeeHandler, leaveHandler, taskHandler,
		attendanceHandler, notificationHandler, documentHandler)
}

// setupAuthRoutes configures the public login routes of both portals
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler) {
	admin := router.Group("/admin")
	admin.Post("/signup", middleware.AuthRateLimiter(), handler.AdminSignUp)
	admin.Post("/login", middleware.AuthRateLimiter(), handler.AdminLogin)
	admin.Post("/logout", handler.AdminLogout)
	admin.Post("/forgot", middleware.StrictRateLimiter(), handler.AdminForgot)
	admin.Post("/reset", middleware.StrictRateLimiter(), handler.AdminReset)

	employee := router.Group("/employee")
	employee.Post("/login", middleware.AuthRateLimiter(), handler.EmployeeLogin)
	employee.Post("/register", middleware.AuthRateLimiter(), handler.EmployeeRegister)
	employee.Post("/logout", handler.EmployeeLogout)
	employee.Post("/forgot", middleware.StrictRateLimiter(), handler.EmployeeForgot)
	employee.Get("/forgot/status", handler.EmployeeForgotStatus)
	employee.Post("/reset", middleware.StrictRateLimiter(), handler.EmployeeReset)
}

// setupSessionRoutes configures heartbeat and status routes
func setupSessionRoutes(router fiber.Router, handler *handlers.SessionHandler) {
	router.Post("/activity", handler.Activity)
	router.Get("/status", handler.Status)
}

// setupAdminRoutes configures the admin portal
func setupAdminRoutes(
	router fiber.Router,
	dashboardHandler *handlers.DashboardHandler,
	employeeHandler *handlers.EmployeeHandler,
	orgHandler *handlers.OrgHandler,
	resetHandler *handlers.PasswordResetHandler,
	leaveHandler *handlers.LeaveHandler,
	taskHandler *handlers.TaskHandler,
	attendanceHandler *handlers.AttendanceHandler,
	notificationHandler *handlers.NotificationHandler,
	documentHandler *handlers.DocumentHandler,
) {
	router.Get("/me", dashboardHandler.AdminMe)
	router.Get("/dashboard", dashboardHandler.GetAdminDashboard)

	// Org lists may be reused by the browser for a short while
	router.Get("/departments", middleware.PrivateCacheHeaders(30*time.Second), orgHandler.ListDepartments)
	router.Post("/departments", orgHandler.CreateDepartment)
	router.Put("/departments/:id", orgHandler.UpdateDepartment)
	router.Delete("/departments/:id", orgHandler.DeleteDepartment)

	router.Get("/designations", middleware.PrivateCacheHeaders(30*time.Second), orgHandler.ListDesignations)
	router.Post("/designations", orgHandler.CreateDesignation)
	router.Put("/designations/:id", orgHandler.UpdateDesignation)
	router.Delete("/designations/:id", orgHandler.DeleteDesignation)

	router.Get("/employees", employeeHandler.List)
	router.Post("/employees", employeeHandler.Create)
	router.Get("/employees/:id", employeeHandler.Get)
	router.Put("/employees/:id", employeeHandler.Update)
	router.Delete("/employees/:id", employeeHandler.Delete)
	router.Post("/employees/:id/register", employeeHandler.Register)
	router.Put("/employees/:id/account-status", employeeHandler.SetAccountStatus)
	router.Get("/employees/:id/documents", documentHandler.ListForEmployee)

	router.Get("/password-resets", resetHandler.List)
	router.Put("/password-resets/:id/approve", resetHandler.Approve)
	router.Put("/password-resets/:id/reject", resetHandler.Reject)

	router.Get("/leaves", leaveHandler.List)
	router.Put("/leaves/:id/approve", leaveHandler.Approve)
	router.Put("/leaves/:id/reject", leaveHandler.Reject)

	router.Get("/tasks", taskHandler.List)
	router.Post("/tasks", taskHandler.Assign)
	router.Put("/tasks/:id/due-date", taskHandler.UpdateDueDate)

	router.Get("/attendance/:employeeId", attendanceHandler.EmployeeReport)

	router.Get("/notifications", notificationHandler.List)
	router.Post("/notifications", notificationHandler.Publish)
	router.Delete("/notifications/:id", notificationHandler.Delete)

	router.Get("/documents/:id", documentHandler.Download)
	router.Delete("/documents/:id", documentHandler.Delete)
}

// setupEmployeeRoutes configures the employee portal
func setupEmployeeRoutes(
	router fiber.Router,
	employeeHandler *handlers.EmployeeHandler,
	leaveHandler *handlers.LeaveHandler,
	taskHandler *handlers.TaskHandler,
	attendanceHandler *handlers.AttendanceHandler,
	notificationHandler *handlers.NotificationHandler,
	documentHandler *handlers.DocumentHandler,
) {
	router.Get("/me", employeeHandler.Me)

	router.Get("/leaves", leaveHandler.ListMine)
	router.Post("/leaves", leaveHandler.Apply)
	router.Put("/leaves/:id/cancel", leaveHandler.Cancel)

	router.Get("/tasks", taskHandler.ListMine)
	router.Put("/tasks/:id/status", taskHandler.UpdateStatus)

	router.Post("/attendance/check-in", attendanceHandler.CheckIn)
	router.Post("/attendance/check-out", attendanceHandler.CheckOut)
	router.Get("/attendance/report", attendanceHandler.MyReport)

	router.Get("/notifications", notificationHandler.ListMine)

	router.Get("/documents", documentHandler.ListMine)
	router.Post("/documents", documentHandler.Upload)
	router.Get("/documents/:id/download", documentHandler.DownloadMine)
	router.Delete("/documents/:id", documentHandler.DeleteMine)
}
