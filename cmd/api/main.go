package main

import (
	"fmt"
	"net/http"

	"github.com/pontofacil/ponto-backend-go/internal/config"
	appHTTP "github.com/pontofacil/ponto-backend-go/internal/handler/http"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/database"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontofacil/ponto-backend-go/internal/repository/postgresql"
	authService "github.com/pontofacil/ponto-backend-go/internal/service/auth"
	editRequestService "github.com/pontofacil/ponto-backend-go/internal/service/editrequest"
	reportService "github.com/pontofacil/ponto-backend-go/internal/service/report"
	timeEntryService "github.com/pontofacil/ponto-backend-go/internal/service/timeentry"
	userService "github.com/pontofacil/ponto-backend-go/internal/service/user"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	editRequestRepo := postgresql.NewEditRequestRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, JWTService, refreshTokenRepo)
	userSvc := userService.NewUserService(db, userRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(db, timeEntryRepo)
	editRequestSvc := editRequestService.NewEditRequestService(db, editRequestRepo, timeEntryRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	editRequestHandler := appHTTP.NewEditRequestHandler(editRequestSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		authHandler,
		userHandler,
		timeEntryHandler,
		editRequestHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
