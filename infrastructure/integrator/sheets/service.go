package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
	"github.com/martonai/revenue-dashboard-api/pkg/utils"
)

// Integrator expõe a planilha de deals manuais já resumida. Falha de fonte
// degrada para o resumo zerado.
type Integrator interface {
	Summary(ctx context.Context, filters *domain.ReportFilters) *domain.SheetsSummary
}

type SheetsIntegrator struct {
	cfg    *config.Config
	client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) *SheetsIntegrator {
	return &SheetsIntegrator{
		cfg:    cfg,
		client: client,
	}
}

func (s *SheetsIntegrator) Summary(ctx context.Context, filters *domain.ReportFilters) *domain.SheetsSummary {
	body, err := s.client.FetchCSV(ctx)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("sheets: failed to fetch spreadsheet, degrading to empty summary")
		return emptySummary()
	}

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Now().UTC()
	if filters != nil && filters.StartDate != nil && !filters.StartDate.IsZero() {
		start = *filters.StartDate
	}
	if filters != nil && filters.EndDate != nil && !filters.EndDate.IsZero() {
		end = *filters.EndDate
	}

	deals, err := parseDeals(body)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("sheets: failed to parse spreadsheet, degrading to empty summary")
		return emptySummary()
	}

	inWindow := make([]domain.SheetDeal, 0, len(deals))
	for _, deal := range deals {
		if utils.WithinWindow(deal.Date, start, end) {
			inWindow = append(inWindow, deal)
		}
	}

	summary := summarize(inWindow)

	logrus.WithFields(logrus.Fields{
		"deals": summary.DealCount,
		"start": start.Format(time.DateOnly),
		"end":   end.Format(time.DateOnly),
	}).Debug("sheets: summary built")

	return summary
}

// parseDeals decodifica o CSV exportado. O cabeçalho é normalizado para
// snake_case e as colunas aceitam os nomes em inglês e em alemão. Linhas sem
// data válida são descartadas em silêncio: a planilha é mantida à mão e
// sempre tem sobras de edição.
func parseDeals(body []byte) ([]domain.SheetDeal, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []domain.SheetDeal{}, nil
	}

	header := map[string]int{}
	for i, name := range records[0] {
		header[normalizeHeader(name)] = i
	}

	deals := make([]domain.SheetDeal, 0, len(records)-1)
	for _, row := range records[1:] {
		date, ok := parseRowDate(cellByNames(row, header, "date", "datum"))
		if !ok {
			continue
		}

		deals = append(deals, domain.SheetDeal{
			Date:          date,
			Customer:      cellByNames(row, header, "customer", "kunde"),
			Amount:        parseLocaleFloat(cellByNames(row, header, "amount", "betrag")),
			Type:          strings.ToLower(cellByNames(row, header, "type", "typ")),
			Credits:       parseIntCell(cellByNames(row, header, "credits", "videos")),
			PricePerVideo: parseLocaleFloat(cellByNames(row, header, "preis_per_video", "price_per_video")),
			MRR:           parseLocaleFloat(cellByNames(row, header, "mrr")),
		})
	}

	return deals, nil
}

func normalizeHeader(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "_")
}

func cellByNames(row []string, header map[string]int, names ...string) string {
	for _, name := range names {
		if i, ok := header[name]; ok && i < len(row) {
			if value := strings.TrimSpace(row[i]); value != "" {
				return value
			}
		}
	}
	return ""
}

// parseRowDate aceita DD.MM.YYYY e YYYY-MM-DD.
func parseRowDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	if strings.Contains(value, ".") {
		date, err := time.Parse("02.01.2006", value)
		if err != nil {
			return time.Time{}, false
		}
		return date, true
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// parseLocaleFloat converte valores no formato alemão (ponto de milhar,
// vírgula decimal) e remove o símbolo de euro. Valores com ponto decimal
// passam direto.
func parseLocaleFloat(value string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, "€", ""))
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	if cleaned == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseIntCell(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}

// summarize agrega os deals da janela. Os valores da planilha já são
// líquidos; aqui não existe divisão de IVA.
func summarize(deals []domain.SheetDeal) *domain.SheetsSummary {
	summary := &domain.SheetsSummary{
		MonthlyBreakdown: []domain.SheetsMonthBucket{},
		Deals:            deals,
	}

	buckets := map[string]*domain.SheetsMonthBucket{}

	for _, deal := range deals {
		summary.TotalRevenue += deal.Amount
		summary.TotalMRR += deal.MRR
		summary.TotalCredits += deal.Credits
		summary.DealCount++

		if deal.MRR > 0 {
			summary.ActiveManualSubscribers++
		}

		switch {
		case strings.Contains(deal.Type, "month") || strings.Contains(deal.Type, "monat"):
			summary.MonthlyDeals++
		case strings.Contains(deal.Type, "year") || strings.Contains(deal.Type, "jahr"):
			summary.YearlyDeals++
		case strings.Contains(deal.Type, "single") || strings.Contains(deal.Type, "einzel") || strings.Contains(deal.Type, "einmal"):
			summary.SingleDeals++
		}

		key := utils.MonthKey(deal.Date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.SheetsMonthBucket{Month: key}
			buckets[key] = bucket
		}
		bucket.Revenue += deal.Amount
		bucket.MRR += deal.MRR
		bucket.Deals++
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		summary.MonthlyBreakdown = append(summary.MonthlyBreakdown, *buckets[key])
	}

	return summary
}

func emptySummary() *domain.SheetsSummary {
	return &domain.SheetsSummary{
		MonthlyBreakdown: []domain.SheetsMonthBucket{},
		Deals:            []domain.SheetDeal{},
	}
}
