package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/geoattend-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/repository/postgresql"
	authService "github.com/cmlabs-hris/geoattend-backend-go/internal/service/auth"
	clockEventService "github.com/cmlabs-hris/geoattend-backend-go/internal/service/clockevent"
	dashboardService "github.com/cmlabs-hris/geoattend-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/geoattend-backend-go/internal/service/employee"
	reportService "github.com/cmlabs-hris/geoattend-backend-go/internal/service/report"
	shiftService "github.com/cmlabs-hris/geoattend-backend-go/internal/service/shift"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/service/timesheet"
	workSiteService "github.com/cmlabs-hris/geoattend-backend-go/internal/service/worksite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workSiteRepo := postgresql.NewWorkSiteRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	clockEventRepo := postgresql.NewClockEventRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	calculator := timesheet.NewCalculator(cfg.Location())

	authSvc := authService.NewAuthService(userRepo, JWTService)
	clockEventSvc := clockEventService.NewClockEventService(clockEventRepo, employeeRepo, workSiteRepo, calculator)
	reportSvc := reportService.NewReportService(clockEventRepo, employeeRepo, calculator)
	dashboardSvc := dashboardService.NewDashboardService(clockEventRepo, employeeRepo, calculator)
	workSiteSvc := workSiteService.NewWorkSiteService(workSiteRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, shiftRepo, workSiteRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	clockEventHandler := appHTTP.NewClockEventHandler(clockEventSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	masterHandler := appHTTP.NewMasterHandler(workSiteSvc, shiftSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	scheduler := cron.NewScheduler()
	watchdog := clockEventService.NewMissingCheckoutWatchdog(clockEventRepo, employeeRepo, calculator)
	watchdog.Register(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		clockEventHandler,
		reportHandler,
		dashboardHandler,
		masterHandler,
		employeeHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
