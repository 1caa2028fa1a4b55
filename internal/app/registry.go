package app

import (
	"github.com/Marllon-hub/hospital-plataforma/internal/announcement"
	"github.com/Marllon-hub/hospital-plataforma/internal/auth"
	"github.com/Marllon-hub/hospital-plataforma/internal/course"
	"github.com/Marllon-hub/hospital-plataforma/internal/department"
	"github.com/Marllon-hub/hospital-plataforma/internal/employee"
	"github.com/Marllon-hub/hospital-plataforma/internal/materialrequest"
	"github.com/Marllon-hub/hospital-plataforma/internal/message"
	"github.com/Marllon-hub/hospital-plataforma/internal/messaging/kafka"
	"github.com/Marllon-hub/hospital-plataforma/internal/middleware"
	"github.com/Marllon-hub/hospital-plataforma/internal/rbac"
	"github.com/Marllon-hub/hospital-plataforma/internal/report"
	"github.com/Marllon-hub/hospital-plataforma/internal/schedule"
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	messageRepo := message.NewRepository(gormDB)
	courseRepo := course.NewRepository(gormDB)
	materialRequestRepo := materialrequest.NewRepository(gormDB)
	announcementRepo := announcement.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// The schedule engine reads employees through this directory only.
	directory := employee.NewDirectory(employeeRepo)

	// --- Services ---
	authService := auth.NewService(employeeRepo)
	employeeService := employee.NewService(gormDB, employeeRepo, outboxRepo, rdb)
	departmentService := department.NewService(departmentRepo)
	scheduleService := schedule.NewService(gormDB, scheduleRepo, directory, outboxRepo, rdb)
	messageService := message.NewService(messageRepo, directory)
	courseService := course.NewService(gormDB, courseRepo, counterRepo, directory, outboxRepo)
	materialRequestService := materialrequest.NewService(materialRequestRepo, directory)
	announcementService := announcement.NewService(announcementRepo, directory)
	reportService := report.NewService(directory)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	departmentHandler := department.NewHandler(departmentService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	messageHandler := message.NewHandler(messageService)
	courseHandler := course.NewHandler(courseService)
	materialRequestHandler := materialrequest.NewHandler(materialRequestService)
	announcementHandler := announcement.NewHandler(announcementService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.Idempotency(rdb))
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		schedule.RegisterRoutes(api, scheduleHandler, rbacService)
		message.RegisterRoutes(api, messageHandler, rbacService)
		course.RegisterRoutes(api, courseHandler, rbacService)
		materialrequest.RegisterRoutes(api, materialRequestHandler, rbacService)
		announcement.RegisterRoutes(api, announcementHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
	}

	return nil
}
