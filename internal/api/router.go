package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/carewell/hospital-system/internal/api/handler"
	"github.com/carewell/hospital-system/internal/api/middleware"
	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/service"
	"github.com/carewell/hospital-system/internal/infrastructure/config"
	"github.com/carewell/hospital-system/internal/infrastructure/db/sqlite"
	"github.com/carewell/hospital-system/web/static"
)

// NewRouter builds the Echo instance with all routes registered. Every
// capability requirement is declared here on the route itself, so the
// table below is the full access-control picture.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hospital"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	patientRepo := sqlite.NewPatientRepository(db)
	doctorRepo := sqlite.NewDoctorRepository(db)
	appointmentRepo := sqlite.NewAppointmentRepository(db)
	invoiceRepo := sqlite.NewInvoiceRepository(db)
	reportRepo := sqlite.NewReportRepository(db)

	authService := service.NewAuthService(userRepo, cfg.SecretKey, cfg.SessionTTL)
	patientService := service.NewPatientService(patientRepo)
	doctorService := service.NewDoctorService(doctorRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo)
	billingService := service.NewBillingService(invoiceRepo)
	reportService := service.NewReportService(reportRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL)
	patientHandler := handler.NewPatientHandler(patientService, reportService, log)
	doctorHandler := handler.NewDoctorHandler(doctorService, log)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService, patientService, doctorService, log)
	billingHandler := handler.NewBillingHandler(billingService, patientService, log)
	reportHandler := handler.NewReportHandler(reportService)
	healthHandler := handler.NewHealthHandler(db)

	// --- Public routes ---
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.POST("/logout", authHandler.Logout)

	e.StaticFS("/static", static.FS)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	authed := e.Group("", middleware.Auth(cfg.SecretKey))

	authed.GET("/", patientHandler.Dashboard)
	authed.POST("/add_patient", patientHandler.Add)
	authed.GET("/edit/:id", patientHandler.EditPage)
	authed.POST("/edit/:id", patientHandler.Update)
	authed.POST("/delete/:id", patientHandler.Delete)
	authed.GET("/export_patients", patientHandler.Export)

	authed.GET("/doctors", doctorHandler.List)
	authed.POST("/doctors", doctorHandler.Add)
	authed.GET("/edit_doctor/:id", doctorHandler.EditPage)
	authed.POST("/edit_doctor/:id", doctorHandler.Update)
	authed.POST("/delete_doctor/:id", doctorHandler.Delete, middleware.RequireRole(domain.RoleAdmin))

	authed.GET("/appointments", appointmentHandler.List)
	authed.POST("/appointments", appointmentHandler.Schedule)
	authed.POST("/cancel_appointment/:id", appointmentHandler.Cancel)

	authed.GET("/billing", billingHandler.List)
	authed.POST("/billing", billingHandler.Create)
	authed.GET("/invoice/:id", billingHandler.Detail)
	authed.POST("/pay_invoice/:id", billingHandler.Pay)
	authed.POST("/delete_invoice/:id", billingHandler.Delete)
	authed.GET("/export_invoices", billingHandler.Export)

	authed.GET("/report", reportHandler.Totals)

	return e, nil
}
