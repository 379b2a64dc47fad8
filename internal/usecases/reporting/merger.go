package reporting

import (
	"sort"

	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

// MergeMonthlyBreakdowns consolida os baldes mensais das três fontes no
// gráfico combinado. Cada fonte tem um mapeamento tipado para seu campo
// canônico; meses ausentes em uma fonte entram zerados e o total de cada mês
// é a soma dos seis campos.
func MergeMonthlyBreakdowns(
	saas []domain.SaaSMonthBucket,
	agency []domain.AgencyMonthBucket,
	sheets []domain.SheetsMonthBucket,
) []domain.MonthBucket {
	merged := map[string]*domain.MonthBucket{}

	bucketFor := func(month string) *domain.MonthBucket {
		bucket, ok := merged[month]
		if !ok {
			bucket = &domain.MonthBucket{Month: month}
			merged[month] = bucket
		}
		return bucket
	}

	for _, item := range saas {
		bucket := bucketFor(item.Month)
		bucket.SaaSYearly += item.Yearly
		bucket.SaaSMonthly += item.Monthly
		bucket.SaaSSingle += item.Single
	}

	for _, item := range agency {
		bucket := bucketFor(item.Month)
		bucket.AgencyStripe += item.StripeRevenue
		bucket.AgencySevdesk += item.SevdeskRevenue
	}

	for _, item := range sheets {
		bucketFor(item.Month).SheetsManual += item.Revenue
	}

	months := make([]string, 0, len(merged))
	for month := range merged {
		months = append(months, month)
	}
	sort.Strings(months)

	combined := make([]domain.MonthBucket, 0, len(months))
	for _, month := range months {
		bucket := merged[month]
		bucket.Total = bucket.SaaSYearly + bucket.SaaSMonthly + bucket.SaaSSingle +
			bucket.AgencyStripe + bucket.AgencySevdesk + bucket.SheetsManual
		combined = append(combined, *bucket)
	}

	return combined
}
