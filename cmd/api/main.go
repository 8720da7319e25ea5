package main

import (
	"fmt"
	"net/http"

	"github.com/nimbus-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/nimbus-hr/payroll-backend-go/internal/handler/http"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/database"
	"github.com/nimbus-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/nimbus-hr/payroll-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/nimbus-hr/payroll-backend-go/internal/service/adjustment"
	advanceService "github.com/nimbus-hr/payroll-backend-go/internal/service/advance"
	attendanceService "github.com/nimbus-hr/payroll-backend-go/internal/service/attendance"
	serviceAuth "github.com/nimbus-hr/payroll-backend-go/internal/service/auth"
	employeeService "github.com/nimbus-hr/payroll-backend-go/internal/service/employee"
	payrollService "github.com/nimbus-hr/payroll-backend-go/internal/service/payroll"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRequestRepo := postgresql.NewAttendanceRequestRepository(db)
	attendanceLedgerRepo := postgresql.NewAttendanceLedgerRepository(db)
	rollupRepo := postgresql.NewMonthlyRollupRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	extraDayRepo := postgresql.NewExtraDayRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := serviceAuth.NewAuthService(cfg.Admin, JWTService, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRequestRepo,
		attendanceLedgerRepo,
		rollupRepo,
		employeeRepo,
	)
	adjustmentSvc := adjustmentService.NewAdjustmentService(
		bonusRepo,
		deductionRepo,
		extraDayRepo,
		employeeRepo,
	)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		employeeRepo,
		bonusRepo,
		deductionRepo,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	portalHandler := appHTTP.NewPortalHandler(employeeSvc, attendanceSvc, adjustmentSvc, advanceSvc, payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		adjustmentHandler,
		advanceHandler,
		payrollHandler,
		portalHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
