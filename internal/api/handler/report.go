package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/martonai/revenue-dashboard-api/internal/domain"
	"github.com/martonai/revenue-dashboard-api/internal/usecases/reporting"
	"github.com/martonai/revenue-dashboard-api/pkg/apiErrors"
	"github.com/martonai/revenue-dashboard-api/pkg/log"
	"github.com/martonai/revenue-dashboard-api/pkg/utils"
)

func GetDashboardReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("report: building dashboard report")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("report: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": r.URL.Query().Get("end_date"),
				"error":    err.Error(),
			}).Warn("report: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if endDate != nil && !endDate.IsZero() {
			inclusive := utils.EndOfDay(*endDate)
			endDate = &inclusive
		}

		filters := &domain.ReportFilters{
			StartDate: startDate,
			EndDate:   endDate,
		}

		logger.WithFields(log.Fields{
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Debug("report: building report with filters")

		report, err := service.BuildReport(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": startDate.Format(time.DateOnly),
				"end_date":   endDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("report: failed to build dashboard report")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithField("error", err.Error()).Error("report: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
