package main

import (
	"fmt"
	"net/http"

	"github.com/datasynergy/asistencia-backend-go/internal/config"
	appHTTP "github.com/datasynergy/asistencia-backend-go/internal/handler/http"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/assistant"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/database"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/jwt"
	"github.com/datasynergy/asistencia-backend-go/internal/repository/postgresql"
	authService "github.com/datasynergy/asistencia-backend-go/internal/service/auth"
	chatService "github.com/datasynergy/asistencia-backend-go/internal/service/chat"
	dashboardService "github.com/datasynergy/asistencia-backend-go/internal/service/dashboard"
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
	metricsRepo := postgresql.NewMetricsRepository(db)
	systemUserRepo := postgresql.NewSystemUserRepository(db)
	chatSnapshotRepo := postgresql.NewChatSnapshotRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	assistantClient := assistant.NewHTTPClient(cfg.Assistant.URL, cfg.Assistant.Timeout)

	authSvc := authService.NewAuthService(systemUserRepo, JWTService)
	dashboardSvc := dashboardService.NewDashboardService(metricsRepo, employeeRepo)
	chatSvc := chatService.NewChatService(chatSnapshotRepo, assistantClient)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(dashboardSvc)
	chatHandler := appHTTP.NewChatHandler(chatSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		dashboardHandler,
		employeeHandler,
		chatHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
