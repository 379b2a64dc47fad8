package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/firebase"
	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/sheets"
	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
	"github.com/martonai/revenue-dashboard-api/pkg/utils"
)

// Reporter monta o relatório combinado do dashboard.
type Reporter interface {
	BuildReport(ctx context.Context, filters *domain.ReportFilters) (*domain.DashboardReport, error)
}

type Service struct {
	stripeService   stripe.Integrator
	sheetsService   sheets.Integrator
	firebaseService firebase.Integrator
}

func NewService(
	stripeService stripe.Integrator,
	sheetsService sheets.Integrator,
	firebaseService firebase.Integrator,
) *Service {
	return &Service{
		stripeService:   stripeService,
		sheetsService:   sheetsService,
		firebaseService: firebaseService,
	}
}

// BuildReport consulta as quatro fontes em paralelo e compõe as métricas
// combinadas. Resumos de fonte indisponível chegam zerados dos integrators; a
// coleta de clientes é a única que derruba o relatório, porque um CLV parcial
// seria silenciosamente errado.
func (s *Service) BuildReport(ctx context.Context, filters *domain.ReportFilters) (*domain.DashboardReport, error) {
	var (
		saasSummary     *domain.SaaSSummary
		agencySummary   *domain.AgencySummary
		sheetsSummary   *domain.SheetsSummary
		userbaseSummary *domain.UserbaseSummary
		customerData    *domain.CustomerData
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		saasSummary = s.stripeService.SaaSSummary(groupCtx, filters)
		return nil
	})
	group.Go(func() error {
		agencySummary = s.stripeService.AgencySummary(groupCtx, filters)
		return nil
	})
	group.Go(func() error {
		sheetsSummary = s.sheetsService.Summary(groupCtx, filters)
		return nil
	})
	group.Go(func() error {
		userbaseSummary = s.firebaseService.UserbaseSummary(groupCtx, filters)
		return nil
	})
	group.Go(func() error {
		var err error
		customerData, err = s.stripeService.CustomerData(groupCtx)
		if err != nil {
			return errors.Wrap(err, "erro ao coletar os dados de clientes")
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	report := compose(saasSummary, agencySummary, sheetsSummary, userbaseSummary, customerData, filters)

	logrus.WithFields(logrus.Fields{
		"total_revenue": report.Overview.TotalRevenue,
		"mrr":           report.Overview.MRR,
		"months":        len(report.CombinedMonthlyBreakdown),
	}).Info("reporting: dashboard report built")

	return report, nil
}

// compose calcula as métricas compostas a partir dos resumos por fonte.
func compose(
	saas *domain.SaaSSummary,
	agency *domain.AgencySummary,
	sheets *domain.SheetsSummary,
	userbase *domain.UserbaseSummary,
	customers *domain.CustomerData,
	filters *domain.ReportFilters,
) *domain.DashboardReport {
	// MRR combinado junta as assinaturas do billing com os deals manuais
	combinedMRR := saas.MRR + sheets.TotalMRR

	// O Adjusted MRR dilui a receita avulsa pela janela consultada
	monthsInRange := 1
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		monthsInRange = utils.MonthsBetween(*filters.StartDate, *filters.EndDate)
	}
	adjustedMRR := combinedMRR + saas.SingleRevenue/float64(monthsInRange)

	combinedARR := combinedMRR * 12
	expectedARR := adjustedMRR * 12

	totalRevenue := saas.TotalRevenue + agency.TotalRevenue + sheets.TotalRevenue
	totalActiveSubscribers := saas.ActiveSubscribers + sheets.ActiveManualSubscribers

	arpu := 0.0
	if userbase.TotalUserbase > 0 {
		arpu = totalRevenue / float64(userbase.TotalUserbase)
	}

	return &domain.DashboardReport{
		Overview: domain.OverviewMetrics{
			TotalRevenue: totalRevenue,
			MRR:          combinedMRR,
			AdjustedMRR:  adjustedMRR,
			ARR:          combinedARR,
			ExpectedARR:  expectedARR,
			Valuations: domain.Valuations{
				ThreeX: expectedARR * 3,
				FiveX:  expectedARR * 5,
				EightX: expectedARR * 8,
			},
			TotalOrders: agency.OrderCount + saas.SinglePurchaseCount,
		},
		SaaS: domain.SaaSMetrics{
			Revenue:             saas.TotalRevenue + sheets.TotalRevenue,
			MRR:                 combinedMRR,
			MonthlyMRR:          saas.MonthlyMRR,
			YearlyMRR:           saas.YearlyMRR,
			SheetsMRR:           sheets.TotalMRR,
			ARR:                 combinedARR,
			ActiveSubscribers:   totalActiveSubscribers,
			MonthlySubscribers:  saas.MonthlySubscribers,
			YearlySubscribers:   saas.YearlySubscribers,
			SinglePurchaseCount: saas.SinglePurchaseCount,
			SingleRevenue:       saas.SingleRevenue,
			MonthlyRevenue:      saas.MonthlyRevenue,
			YearlyRevenue:       saas.YearlyRevenue,
			AvgBasketMonthly:    saas.AvgBasketMonthly,
			AvgBasketYearly:     saas.AvgBasketYearly,
			AvgBasketSingle:     saas.AvgBasketSingle,
			ChurnRate:           saas.ChurnRate,
			ChurnCount:          saas.ChurnCount,
			NewSubscriptions:    saas.NewSubscriptions,
			MonthlyBreakdown:    saas.MonthlyBreakdown,
			MRRHistory:          saas.MRRHistory,
			InflowOutflow:       saas.MRRHistory,
		},
		Agency: domain.AgencyMetrics{
			Revenue:           agency.TotalRevenue,
			OrderCount:        agency.OrderCount,
			AvgBasket:         agency.AvgBasket,
			StripeRevenue:     agency.TotalRevenue,
			SevdeskRevenue:    agency.SevdeskRevenue,
			SevdeskOrderCount: agency.SevdeskOrderCount,
			SevdeskAvgBasket:  agency.SevdeskAvgBasket,
			MonthlyBreakdown:  agency.MonthlyBreakdown,
		},
		Insights: domain.InsightMetrics{
			TotalUserbase:          userbase.TotalUserbase,
			ActiveSubscribers:      totalActiveSubscribers,
			ConversionFreeToSub:    userbase.ConversionFreeToSub,
			ConversionFreeToPaying: userbase.ConversionFreeToPaying,
			AvgDiscountMonthly:     saas.AvgDiscountMonthly,
			AvgDiscountYearly:      saas.AvgDiscountYearly,
			AvgDiscountSingle:      saas.AvgDiscountSingle,
			AvgUsagePercent:        userbase.AvgUsagePercent,
			SingleBuyersCount:      saas.SinglePurchaseCount,
			CLV:                    customers.CLV,
			ARPU:                   arpu,
			AvgTimeToFirstPurchase: userbase.AvgTimeToFirstPurchase,
		},
		CombinedMonthlyBreakdown: MergeMonthlyBreakdowns(
			saas.MonthlyBreakdown,
			agency.MonthlyBreakdown,
			sheets.MonthlyBreakdown,
		),
		Sheets: domain.SheetsOverview{
			TotalRevenue: sheets.TotalRevenue,
			TotalMRR:     sheets.TotalMRR,
			DealCount:    sheets.DealCount,
		},
		Filters:     filters,
		GeneratedAt: time.Now().UTC(),
	}
}
