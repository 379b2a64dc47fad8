package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/martonai/revenue-dashboard-api/internal/domain"
	"github.com/martonai/revenue-dashboard-api/internal/usecases/authenticating"
	authmocks "github.com/martonai/revenue-dashboard-api/internal/usecases/authenticating/mocks"
	custmocks "github.com/martonai/revenue-dashboard-api/internal/usecases/customering/mocks"
	repmocks "github.com/martonai/revenue-dashboard-api/internal/usecases/reporting/mocks"
)

func TestGetDashboardReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := repmocks.NewMockReporter(ctrl)

	var captured *domain.ReportFilters
	service.EXPECT().
		BuildReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filters *domain.ReportFilters) (*domain.DashboardReport, error) {
			captured = filters
			return &domain.DashboardReport{
				Overview: domain.OverviewMetrics{MRR: 400},
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/report?start_date=2024-01-01&end_date=2024-02-29", nil)
	rec := httptest.NewRecorder()

	GetDashboardReport(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report domain.DashboardReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, 400.0, report.Overview.MRR)

	// A data final deve chegar ao serviço estendida para o fim do dia
	require.NotNil(t, captured)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *captured.StartDate)
	assert.Equal(t, 29, captured.EndDate.Day())
	assert.Equal(t, 23, captured.EndDate.Hour())
}

func TestGetDashboardReportRejectsInvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := repmocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/report?start_date=01-01-2024", nil)
	rec := httptest.NewRecorder()

	GetDashboardReport(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDashboardReportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := repmocks.NewMockReporter(ctrl)
	service.EXPECT().
		BuildReport(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("fonte de clientes indisponível"))

	req := httptest.NewRequest(http.MethodGet, "/v1/report", nil)
	rec := httptest.NewRecorder()

	GetDashboardReport(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetChurnedCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := custmocks.NewMockCustomering(ctrl)
	service.EXPECT().
		ChurnReport(gomock.Any(), gomock.Any()).
		Return(&domain.ChurnReport{
			Summary: domain.ChurnSummary{TotalChurned: 2},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/churned", nil)
	rec := httptest.NewRecorder()

	GetChurnedCustomers(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.ChurnReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, 2, report.Summary.TotalChurned)
}

func TestGetCustomerListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := custmocks.NewMockCustomering(ctrl)
	service.EXPECT().
		CustomerList(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("stripe indisponível"))

	req := httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
	rec := httptest.NewRecorder()

	GetCustomerList(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := authmocks.NewMockAuthenticator(ctrl)
	service.EXPECT().Login("senha-do-dashboard").Return("token-jwt", nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"password":"senha-do-dashboard"}`))
	rec := httptest.NewRecorder()

	Login(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "token-jwt", body["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := authmocks.NewMockAuthenticator(ctrl)
	service.EXPECT().Login("errada").Return("", authenticating.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"password":"errada"}`))
	rec := httptest.NewRecorder()

	Login(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var apiErr struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, "AUTH_001", apiErr.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := authmocks.NewMockAuthenticator(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader("{senha"))
	rec := httptest.NewRecorder()

	Login(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
