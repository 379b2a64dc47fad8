package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/sheets/sheetsclient/mocks"
	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

func sheetsFilters() *domain.ReportFilters {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	return &domain.ReportFilters{StartDate: &start, EndDate: &end}
}

func TestSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	csvBody := "Date,Kunde,Betrag,Typ,Credits,Preis per Video,MRR\n" +
		"05.03.2024,Immo GmbH,\"1.234,56€\",Monatlich,10,\"25,50\",\"299,00\"\n" +
		"2024-04-10,Makler AG,500,Einmalig,5,100,0\n" +
		"15.06.2024,Hausverwaltung,1200,Jahresvertrag,0,0,\"100,00\"\n" +
		",Zeile ohne Datum,999,Monatlich,0,0,0\n" +
		"31.12.2023,Alter Deal,800,Monatlich,0,0,\"80,00\"\n"

	client.EXPECT().FetchCSV(gomock.Any()).Return([]byte(csvBody), nil)

	service := New(&config.Config{}, client)

	summary := service.Summary(context.Background(), sheetsFilters())

	// A linha sem data e o deal de 2023 ficam de fora
	require.Equal(t, 3, summary.DealCount)

	assert.InDelta(t, 2934.56, summary.TotalRevenue, 0.0001)
	assert.InDelta(t, 399.0, summary.TotalMRR, 0.0001)
	assert.Equal(t, 15, summary.TotalCredits)
	assert.Equal(t, 2, summary.ActiveManualSubscribers)

	assert.Equal(t, 1, summary.MonthlyDeals)
	assert.Equal(t, 1, summary.YearlyDeals)
	assert.Equal(t, 1, summary.SingleDeals)

	require.Len(t, summary.MonthlyBreakdown, 3)
	assert.Equal(t, "2024-03", summary.MonthlyBreakdown[0].Month)
	assert.InDelta(t, 1234.56, summary.MonthlyBreakdown[0].Revenue, 0.0001)
	assert.Equal(t, "2024-06", summary.MonthlyBreakdown[2].Month)

	require.Len(t, summary.Deals, 3)
	assert.Equal(t, "Immo GmbH", summary.Deals[0].Customer)
	assert.InDelta(t, 25.5, summary.Deals[0].PricePerVideo, 0.0001)
}

func TestSummaryDegradesOnFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().FetchCSV(gomock.Any()).Return(nil, domain.ErrDataSource)

	service := New(&config.Config{}, client)

	summary := service.Summary(context.Background(), sheetsFilters())

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.DealCount)
	assert.NotNil(t, summary.MonthlyBreakdown)
	assert.NotNil(t, summary.Deals)
}

func TestSummaryWithHeaderOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().FetchCSV(gomock.Any()).Return([]byte("date,customer,amount,type,credits,price_per_video,mrr\n"), nil)

	service := New(&config.Config{}, client)

	summary := service.Summary(context.Background(), sheetsFilters())

	assert.Zero(t, summary.DealCount)
	assert.Empty(t, summary.MonthlyBreakdown)
}

func TestParseDealsLocaleValues(t *testing.T) {
	deals, err := parseDeals([]byte("date,amount,mrr\n05.03.2024,\"1.234,56\",\"29,90€\"\n"))

	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.InDelta(t, 1234.56, deals[0].Amount, 0.0001)
	assert.InDelta(t, 29.9, deals[0].MRR, 0.0001)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), deals[0].Date)
}
