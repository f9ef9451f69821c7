package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/auth"
	"github.com/datasynergy/asistencia-backend-go/internal/domain/dashboard"
	"github.com/datasynergy/asistencia-backend-go/internal/domain/employee"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardService struct {
	dashboardCalls int
	seriesCalls    int
	searchCalls    int
	statsCalls     int
}

func (f *fakeDashboardService) GetDashboard(ctx context.Context, q dashboard.Query) (*dashboard.DashboardResponse, error) {
	f.dashboardCalls++
	return &dashboard.DashboardResponse{
		Today:         dashboard.TodayStatsResponse{Entries: 8, Date: "2025-03-03"},
		EntriesPerDay: []dashboard.DayCount{},
		LatePerDay:    []dashboard.DayCount{},
		Range:         dashboard.RangeResponse{From: "2025-03-01", To: "2025-03-03"},
		Table:         []dashboard.TableRow{},
	}, nil
}

func (f *fakeDashboardService) GetSeries(ctx context.Context, from, to string, onlyLate bool) ([]dashboard.DayCount, error) {
	f.seriesCalls++
	return []dashboard.DayCount{{Date: "2025-03-03", Count: 8}}, nil
}

func (f *fakeDashboardService) SearchEmployees(ctx context.Context, term string) ([]employee.Employee, error) {
	f.searchCalls++
	return []employee.Employee{}, nil
}

func (f *fakeDashboardService) GetEmployeeMonthlyStats(ctx context.Context, employeeID int64, month string) (*dashboard.EmployeeStatsResponse, error) {
	f.statsCalls++
	return &dashboard.EmployeeStatsResponse{Month: month, DailyRecords: []dashboard.DailyRecordItem{}}, nil
}

type fakeAuthService struct{}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, auth.ErrInvalidCredentials
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, auth.ErrInvalidToken
}

func (f *fakeAuthService) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

type routerTestEnv struct {
	router     http.Handler
	jwtService jwt.Service
	dashboard  *fakeDashboardService
	chat       *fakeChatService
}

func routerTestInit(t *testing.T) *routerTestEnv {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "15m", "168h")
	dashboardSvc := &fakeDashboardService{}
	chatSvc := &fakeChatService{}

	router := NewRouter(
		jwtService,
		NewAuthHandler(jwtService, &fakeAuthService{}),
		NewDashboardHandler(dashboardSvc),
		NewEmployeeHandler(dashboardSvc),
		NewChatHandler(chatSvc),
		"http://localhost:3000",
	)

	return &routerTestEnv{router: router, jwtService: jwtService, dashboard: dashboardSvc, chat: chatSvc}
}

func (env *routerTestEnv) accessToken(t *testing.T) string {
	t.Helper()
	token, _, err := env.jwtService.GenerateAccessToken(1, "admin")
	require.NoError(t, err)
	return token
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestRouter_DashboardRequiresAuth(t *testing.T) {
	env := routerTestInit(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, decodeEnvelope(t, rec)["success"])
	assert.Zero(t, env.dashboard.dashboardCalls)
}

func TestRouter_DashboardWithAccessToken(t *testing.T) {
	env := routerTestInit(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?desde=2025-03-01&hasta=2025-03-03", nil)
	req.Header.Set("Authorization", "Bearer "+env.accessToken(t))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeEnvelope(t, rec)["success"])
	assert.Equal(t, 1, env.dashboard.dashboardCalls)
}

func TestRouter_RefreshTokenRejectedOnDashboard(t *testing.T) {
	env := routerTestInit(t)

	refreshToken, _, err := env.jwtService.GenerateRefreshToken(1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, env.dashboard.dashboardCalls)
}

func TestRouter_SeriesAndSearchRoutes(t *testing.T) {
	env := routerTestInit(t)
	token := env.accessToken(t)

	for _, path := range []string{
		"/api/v1/dashboard/series?late=true",
		"/api/v1/employees/search?q=garcia",
		"/api/v1/employees/7/stats?month=2025-03",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	assert.Equal(t, 1, env.dashboard.seriesCalls)
	assert.Equal(t, 1, env.dashboard.searchCalls)
	assert.Equal(t, 1, env.dashboard.statsCalls)
}

func TestRouter_ChatKeepsLegacyErrorShape(t *testing.T) {
	env := routerTestInit(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "No autorizado", payload["error"])
	assert.Zero(t, env.chat.calls)
}

func TestRouter_InvalidEmployeeID(t *testing.T) {
	env := routerTestInit(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/abc/stats", nil)
	req.Header.Set("Authorization", "Bearer "+env.accessToken(t))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, env.dashboard.statsCalls)
}
