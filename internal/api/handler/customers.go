package handler

import (
	"encoding/json"
	"net/http"

	"github.com/martonai/revenue-dashboard-api/internal/domain"
	"github.com/martonai/revenue-dashboard-api/internal/usecases/customering"
	"github.com/martonai/revenue-dashboard-api/pkg/apiErrors"
	"github.com/martonai/revenue-dashboard-api/pkg/log"
	"github.com/martonai/revenue-dashboard-api/pkg/utils"
)

func GetChurnedCustomers(service customering.Customering) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("customers: building churned customers report")

		filters, err := windowFiltersFromQuery(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("customers: invalid date filter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.ChurnReport(r.Context(), filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("customers: failed to build churned customers report")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o relatório de cancelamentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithField("error", err.Error()).Error("customers: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetCustomerList(service customering.Customering) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("customers: building customer list")

		filters, err := windowFiltersFromQuery(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("customers: invalid date filter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.CustomerList(r.Context(), filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("customers: failed to build customer list")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar a listagem de clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithField("error", err.Error()).Error("customers: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// windowFiltersFromQuery monta os filtros de janela a partir dos parâmetros
// start_date e end_date, tornando a data final inclusiva.
func windowFiltersFromQuery(r *http.Request) (*domain.ReportFilters, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, err
	}

	if endDate != nil && !endDate.IsZero() {
		inclusive := utils.EndOfDay(*endDate)
		endDate = &inclusive
	}

	return &domain.ReportFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}
