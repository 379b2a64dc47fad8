package revenue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestBuildSaaSSummary(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	payments := []domain.ClassifiedPayment{
		{
			Payment:   domain.Payment{ID: "py_1", Amount: 11900, CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
			Category:  domain.CategorySingle,
			NetAmount: 100,
			Date:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			Payment:   domain.Payment{ID: "py_2", Amount: 5950, CreatedAt: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)},
			Category:  domain.CategoryMonthly,
			NetAmount: 50,
			Date:      time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			Payment:   domain.Payment{ID: "py_3", Amount: 9520, CreatedAt: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)},
			Category:  domain.CategoryMonthly,
			NetAmount: 80,
			Date:      time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			Payment:   domain.Payment{ID: "py_4", Amount: 28560, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			Category:  domain.CategoryYearly,
			NetAmount: 240,
			Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	active := []domain.Subscription{
		{
			ID:              "sub_m1",
			Status:          domain.SubscriptionStatusActive,
			Interval:        domain.IntervalMonth,
			UnitAmount:      5950,
			EffectiveAmount: 5950,
			StartDate:       time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              "sub_y1",
			Status:          domain.SubscriptionStatusActive,
			Interval:        domain.IntervalYear,
			UnitAmount:      23800,
			EffectiveAmount: 23800,
			StartDate:       time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	all := append([]domain.Subscription{}, active...)
	all = append(all,
		domain.Subscription{
			ID:         "sub_churned",
			Status:     domain.SubscriptionStatusCanceled,
			Interval:   domain.IntervalMonth,
			UnitAmount: 5950,
			StartDate:  time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			CanceledAt: timePtr(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		},
		domain.Subscription{
			ID:         "sub_old_churn",
			Status:     domain.SubscriptionStatusCanceled,
			Interval:   domain.IntervalMonth,
			UnitAmount: 5950,
			StartDate:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			CanceledAt: timePtr(time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)),
		},
	)

	summary := BuildSaaSSummary(Input{
		Payments:            payments,
		ActiveSubscriptions: active,
		AllSubscriptions:    all,
		Resolver:            NewMapResolver(),
		Start:               start,
		End:                 end,
	})

	assert.InDelta(t, 470.0, summary.TotalRevenue, 0.0001)
	assert.InDelta(t, 100.0, summary.SingleRevenue, 0.0001)
	assert.InDelta(t, 130.0, summary.MonthlyRevenue, 0.0001)
	assert.InDelta(t, 240.0, summary.YearlyRevenue, 0.0001)

	assert.Equal(t, 1, summary.SinglePurchaseCount)
	assert.InDelta(t, 65.0, summary.AvgBasketMonthly, 0.0001)
	assert.InDelta(t, 240.0, summary.AvgBasketYearly, 0.0001)
	assert.InDelta(t, 100.0, summary.AvgBasketSingle, 0.0001)

	// MRR líquido: mensal 5950/1.19 = 50; anual 23800/1.19/12 = 16.666...
	assert.Equal(t, 2, summary.ActiveSubscribers)
	assert.InDelta(t, 50.0, summary.MonthlyMRR, 0.0001)
	assert.InDelta(t, 16.6667, summary.YearlyMRR, 0.001)
	assert.InDelta(t, 66.6667, summary.MRR, 0.001)
	assert.InDelta(t, 800.0, summary.ARR, 0.01)

	assert.Len(t, summary.MonthlySubscribers, 1)
	assert.Len(t, summary.YearlySubscribers, 1)
	assert.InDelta(t, 16.6667, summary.YearlySubscribers[0].MonthlyEquivalent, 0.001)

	// Churn: 1 encerrada na janela, 1 fora; taxa = 1/(2+1)*100 = 33.33
	assert.Equal(t, 1, summary.ChurnCount)
	assert.InDelta(t, 33.33, summary.ChurnRate, 0.0001)

	// Novas assinaturas: só sub_y1 começou dentro da janela
	assert.Equal(t, 1, summary.NewSubscriptions)
}

func TestBuildSaaSSummaryEmptyInput(t *testing.T) {
	summary := BuildSaaSSummary(Input{
		Resolver: NewMapResolver(),
		Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	})

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.MRR)
	assert.Zero(t, summary.ChurnRate)
	assert.Zero(t, summary.AvgBasketMonthly)
	assert.Empty(t, summary.MonthlyBreakdown)
	assert.NotNil(t, summary.MonthlySubscribers)
	assert.NotNil(t, summary.YearlySubscribers)
}

func TestBuildSaaSBreakdownOrdering(t *testing.T) {
	payments := []domain.ClassifiedPayment{
		{Category: domain.CategorySingle, NetAmount: 10, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Category: domain.CategoryMonthly, NetAmount: 20, Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{Category: domain.CategoryYearly, NetAmount: 30, Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
	}

	breakdown := buildSaaSBreakdown(payments)

	assert.Len(t, breakdown, 2)
	assert.Equal(t, "2024-01", breakdown[0].Month)
	assert.Equal(t, "2024-03", breakdown[1].Month)
	assert.InDelta(t, 50.0, breakdown[0].Total, 0.0001)
	assert.InDelta(t, 20.0, breakdown[0].Monthly, 0.0001)
	assert.InDelta(t, 30.0, breakdown[0].Yearly, 0.0001)
	assert.InDelta(t, 10.0, breakdown[1].Single, 0.0001)
}

func TestBuildMRRHistory(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	subscriptions := []domain.Subscription{
		{
			ID:         "sub_1",
			Status:     domain.SubscriptionStatusActive,
			Interval:   domain.IntervalMonth,
			UnitAmount: 5950,
			StartDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		// Cancelada não gera entrada; o término na janela gera saída
		{
			ID:         "sub_2",
			Status:     domain.SubscriptionStatusCanceled,
			Interval:   domain.IntervalMonth,
			UnitAmount: 5950,
			StartDate:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			EndedAt:    timePtr(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)),
		},
		// Término fora da janela fica fora da série de saída
		{
			ID:         "sub_3",
			Status:     domain.SubscriptionStatusCanceled,
			Interval:   domain.IntervalMonth,
			UnitAmount: 5950,
			StartDate:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			EndedAt:    timePtr(time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)),
		},
	}

	history := buildMRRHistory(subscriptions, start, end)

	assert.Len(t, history, 3)
	assert.Equal(t, "2023-06", history[0].Month)
	assert.Zero(t, history[0].Inflow)
	assert.Zero(t, history[0].Outflow)
	assert.Equal(t, "2024-01", history[1].Month)
	assert.InDelta(t, 50.0, history[1].Inflow, 0.0001)
	assert.Zero(t, history[1].Outflow)
	assert.Equal(t, "2024-02", history[2].Month)
	assert.InDelta(t, 50.0, history[2].Outflow, 0.0001)
	assert.Zero(t, history[2].MRR)
}

func TestApplyDiscountAverages(t *testing.T) {
	resolver := NewMapResolver()
	resolver.Intervals["sub_y"] = domain.IntervalYear

	invoices := []domain.Invoice{
		// 1190 de desconto sobre 23800 = 5% na assinatura anual
		{ID: "in_1", SubscriptionID: "sub_y", Subtotal: 23800, Total: 22610, HasDiscount: true},
		// Assinatura não resolvida cai em mensal: 1190/5950 = 20%
		{ID: "in_2", SubscriptionID: "sub_unknown", Subtotal: 5950, Total: 4760, HasDiscount: true},
		// Sem assinatura é compra avulsa: 1190/11900 = 10%
		{ID: "in_3", Subtotal: 11900, Total: 10710, HasDiscount: true},
		// Sem desconto fica fora da média
		{ID: "in_4", SubscriptionID: "sub_y", Subtotal: 23800, Total: 23800, HasDiscount: false},
		// Cupom presente com abatimento zero entra na média como 0%
		{ID: "in_5", Subtotal: 11900, Total: 11900, HasDiscount: true},
	}

	summary := domain.SaaSSummary{}
	applyDiscountAverages(&summary, invoices, resolver)

	assert.InDelta(t, 5.0, summary.AvgDiscountYearly, 0.0001)
	assert.InDelta(t, 20.0, summary.AvgDiscountMonthly, 0.0001)
	assert.InDelta(t, 5.0, summary.AvgDiscountSingle, 0.0001)
}

func TestBuildAgencySummary(t *testing.T) {
	payments := []domain.Payment{
		{ID: "py_1", Amount: 9520, CreatedAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "py_2", Amount: 4760, CreatedAt: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)},
		{ID: "py_3", Amount: 2380, CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	summary := BuildAgencySummary(payments)

	assert.InDelta(t, 140.0, summary.TotalRevenue, 0.0001)
	assert.Equal(t, 3, summary.OrderCount)
	assert.InDelta(t, 46.6667, summary.AvgBasket, 0.001)
	assert.Zero(t, summary.SevdeskRevenue)

	assert.Len(t, summary.MonthlyBreakdown, 2)
	assert.Equal(t, "2024-03", summary.MonthlyBreakdown[0].Month)
	assert.InDelta(t, 120.0, summary.MonthlyBreakdown[0].StripeRevenue, 0.0001)
	assert.Equal(t, 2, summary.MonthlyBreakdown[0].OrderCount)
}

func TestBuildAgencySummaryEmpty(t *testing.T) {
	summary := BuildAgencySummary(nil)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.AvgBasket)
	assert.Empty(t, summary.MonthlyBreakdown)
}

func TestBuildCustomerData(t *testing.T) {
	records := []domain.CustomerRecord{
		{ID: "cus_1", TotalSpent: 100},
		{ID: "cus_2", TotalSpent: 300},
		{ID: "cus_3", TotalSpent: 200},
	}

	data := BuildCustomerData(records)

	assert.Equal(t, 3, data.TotalCustomers)
	assert.InDelta(t, 200.0, data.CLV, 0.0001)
	assert.Equal(t, "cus_2", data.Customers[0].ID)
	assert.Equal(t, "cus_1", data.Customers[2].ID)
}

func TestBuildCustomerDataEmpty(t *testing.T) {
	data := BuildCustomerData(nil)

	assert.Zero(t, data.TotalCustomers)
	assert.Zero(t, data.CLV)
}
