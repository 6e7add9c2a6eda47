package main

import (
	"fmt"
	"net/http"

	"github.com/patpaw111/web-absn/internal/config"
	appHTTP "github.com/patpaw111/web-absn/internal/handler/http"
	"github.com/patpaw111/web-absn/internal/pkg/cron"
	"github.com/patpaw111/web-absn/internal/pkg/database"
	"github.com/patpaw111/web-absn/internal/pkg/jwt"
	"github.com/patpaw111/web-absn/internal/repository/postgresql"
	attendanceService "github.com/patpaw111/web-absn/internal/service/attendance"
	authService "github.com/patpaw111/web-absn/internal/service/auth"
	holidayService "github.com/patpaw111/web-absn/internal/service/holiday"
	performanceService "github.com/patpaw111/web-absn/internal/service/performance"
	shiftService "github.com/patpaw111/web-absn/internal/service/shift"
	userService "github.com/patpaw111/web-absn/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	recapRepo := postgresql.NewDailyRecapRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(db, userRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, assignmentRepo, userRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	performanceSvc := performanceService.NewPerformanceService(
		assignmentRepo,
		shiftRepo,
		attendanceRepo,
		recapRepo,
		holidayRepo,
		userRepo,
	)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)

	scheduler := cron.NewScheduler()
	cron.NewRecapJobs(performanceSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.FrontendURL,
		authHandler,
		userHandler,
		shiftHandler,
		holidayHandler,
		attendanceHandler,
		performanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
