package revenue

import (
	"sort"
	"time"

	"github.com/martonai/revenue-dashboard-api/internal/domain"
	"github.com/martonai/revenue-dashboard-api/pkg/utils"
)

// Input reúne tudo que o resumo SaaS precisa, já normalizado pelo adapter.
// ActiveSubscriptions cobre só active/trialing; AllSubscriptions inclui as
// encerradas, usadas para churn, novas assinaturas e histórico de MRR.
type Input struct {
	Payments            []domain.ClassifiedPayment
	ActiveSubscriptions []domain.Subscription
	AllSubscriptions    []domain.Subscription
	Invoices            []domain.Invoice
	Resolver            IntervalResolver
	Start               time.Time
	End                 time.Time
}

// BuildSaaSSummary calcula o resumo completo da conta SaaS. Todos os valores
// monetários são líquidos (bruto / 1.19); apenas percentuais são
// arredondados.
func BuildSaaSSummary(in Input) domain.SaaSSummary {
	summary := domain.SaaSSummary{
		MonthlySubscribers: []domain.Subscriber{},
		YearlySubscribers:  []domain.Subscriber{},
		Payments:           in.Payments,
	}

	var monthlyCount, yearlyCount int
	for _, payment := range in.Payments {
		summary.TotalRevenue += payment.NetAmount

		switch payment.Category {
		case domain.CategoryYearly:
			summary.YearlyRevenue += payment.NetAmount
			yearlyCount++
		case domain.CategoryMonthly:
			summary.MonthlyRevenue += payment.NetAmount
			monthlyCount++
		default:
			summary.SingleRevenue += payment.NetAmount
			summary.SinglePurchaseCount++
		}
	}

	summary.AvgBasketMonthly = average(summary.MonthlyRevenue, monthlyCount)
	summary.AvgBasketYearly = average(summary.YearlyRevenue, yearlyCount)
	summary.AvgBasketSingle = average(summary.SingleRevenue, summary.SinglePurchaseCount)

	summary.ActiveSubscribers = len(in.ActiveSubscriptions)
	for _, subscription := range in.ActiveSubscriptions {
		// EffectiveAmount já reflete descontos via última fatura
		amount := NetFromCents(subscription.EffectiveAmount)

		subscriber := domain.Subscriber{
			ID:               subscription.ID,
			CustomerID:       subscription.CustomerID,
			Amount:           amount,
			StartDate:        subscription.StartDate,
			CurrentPeriodEnd: subscription.CurrentPeriodEnd,
		}

		if subscription.Interval == domain.IntervalYear {
			subscriber.MonthlyEquivalent = amount / 12
			summary.YearlyMRR += subscriber.MonthlyEquivalent
			summary.YearlySubscribers = append(summary.YearlySubscribers, subscriber)
		} else {
			summary.MonthlyMRR += amount
			summary.MonthlySubscribers = append(summary.MonthlySubscribers, subscriber)
		}
	}

	summary.MRR = summary.MonthlyMRR + summary.YearlyMRR
	summary.ARR = summary.MRR * 12

	for _, subscription := range in.AllSubscriptions {
		if utils.WithinWindow(subscription.StartDate, in.Start, in.End) {
			summary.NewSubscriptions++
		}

		if !subscription.IsTerminal() {
			continue
		}

		terminatedAt := subscription.TerminatedAt()
		if terminatedAt != nil && utils.WithinWindow(*terminatedAt, in.Start, in.End) {
			summary.ChurnCount++
		}
	}

	if summary.ActiveSubscribers > 0 {
		rate := float64(summary.ChurnCount) / float64(summary.ActiveSubscribers+summary.ChurnCount) * 100
		summary.ChurnRate = utils.RoundWithTwoDecimalPlace(rate)
	}

	applyDiscountAverages(&summary, in.Invoices, in.Resolver)

	summary.MonthlyBreakdown = buildSaaSBreakdown(in.Payments)
	summary.MRRHistory = buildMRRHistory(in.AllSubscriptions, in.Start, in.End)

	return summary
}

// applyDiscountAverages calcula o percentual médio de desconto por categoria
// sobre as faturas que tiveram desconto aplicado; faturas sem desconto ficam
// fora da média.
func applyDiscountAverages(summary *domain.SaaSSummary, invoices []domain.Invoice, resolver IntervalResolver) {
	var totals [3]float64
	var counts [3]int

	for _, invoice := range invoices {
		if !invoice.HasDiscount {
			continue
		}

		var discount float64
		if invoice.Subtotal > 0 {
			discount = float64(invoice.Subtotal-invoice.Total) / float64(invoice.Subtotal) * 100
		}

		category := domain.CategorySingle
		if invoice.SubscriptionID != "" {
			category = domain.CategoryMonthly
			if resolver != nil {
				if interval, ok := resolver.SubscriptionInterval(invoice.SubscriptionID); ok {
					category = categoryForInterval(interval)
				}
			}
		}

		switch category {
		case domain.CategoryMonthly:
			totals[0] += discount
			counts[0]++
		case domain.CategoryYearly:
			totals[1] += discount
			counts[1]++
		default:
			totals[2] += discount
			counts[2]++
		}
	}

	summary.AvgDiscountMonthly = average(totals[0], counts[0])
	summary.AvgDiscountYearly = average(totals[1], counts[1])
	summary.AvgDiscountSingle = average(totals[2], counts[2])
}

func buildSaaSBreakdown(payments []domain.ClassifiedPayment) []domain.SaaSMonthBucket {
	buckets := map[string]*domain.SaaSMonthBucket{}

	for _, payment := range payments {
		key := utils.MonthKey(payment.Date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.SaaSMonthBucket{Month: key}
			buckets[key] = bucket
		}

		switch payment.Category {
		case domain.CategoryYearly:
			bucket.Yearly += payment.NetAmount
		case domain.CategoryMonthly:
			bucket.Monthly += payment.NetAmount
		default:
			bucket.Single += payment.NetAmount
		}
		bucket.Total += payment.NetAmount
	}

	return sortedSaaSBuckets(buckets)
}

// buildMRRHistory monta a série de entrada/saída de MRR pelo mês de início e
// de término das assinaturas, não pelo mês do pagamento. Usa o preço de
// tabela: o histórico mostra o movimento contratado, não o faturado. Entrada
// só vem de assinaturas vivas; saída só de encerramentos dentro da janela.
func buildMRRHistory(subscriptions []domain.Subscription, start, end time.Time) []domain.MRRHistoryBucket {
	buckets := map[string]*domain.MRRHistoryBucket{}

	bucketFor := func(key string) *domain.MRRHistoryBucket {
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.MRRHistoryBucket{Month: key}
			buckets[key] = bucket
		}
		return bucket
	}

	for _, subscription := range subscriptions {
		monthly := NetFromCents(subscription.UnitAmount)
		if subscription.Interval == domain.IntervalYear {
			monthly /= 12
		}

		bucket := bucketFor(utils.MonthKey(subscription.StartDate))
		if subscription.Status == domain.SubscriptionStatusActive ||
			subscription.Status == domain.SubscriptionStatusTrialing {
			bucket.Inflow += monthly
		}

		if !subscription.IsTerminal() {
			continue
		}

		terminatedAt := subscription.TerminatedAt()
		if terminatedAt != nil && utils.WithinWindow(*terminatedAt, start, end) {
			bucketFor(utils.MonthKey(*terminatedAt)).Outflow += monthly
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	history := make([]domain.MRRHistoryBucket, 0, len(keys))
	for _, key := range keys {
		history = append(history, *buckets[key])
	}
	return history
}

func sortedSaaSBuckets(buckets map[string]*domain.SaaSMonthBucket) []domain.SaaSMonthBucket {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	breakdown := make([]domain.SaaSMonthBucket, 0, len(keys))
	for _, key := range keys {
		breakdown = append(breakdown, *buckets[key])
	}
	return breakdown
}

// BuildAgencySummary calcula o resumo da conta da agência. A agência não tem
// assinaturas; todo pagamento é receita de pedido. Os campos Sevdesk ficam em
// zero até a integração existir.
func BuildAgencySummary(payments []domain.Payment) domain.AgencySummary {
	summary := domain.AgencySummary{}
	buckets := map[string]*domain.AgencyMonthBucket{}

	for _, payment := range payments {
		net := NetFromCents(payment.Amount)
		summary.TotalRevenue += net
		summary.OrderCount++

		key := utils.MonthKey(payment.CreatedAt)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.AgencyMonthBucket{Month: key}
			buckets[key] = bucket
		}
		bucket.StripeRevenue += net
		bucket.Total += net
		bucket.OrderCount++
	}

	summary.AvgBasket = average(summary.TotalRevenue, summary.OrderCount)

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	summary.MonthlyBreakdown = make([]domain.AgencyMonthBucket, 0, len(keys))
	for _, key := range keys {
		summary.MonthlyBreakdown = append(summary.MonthlyBreakdown, *buckets[key])
	}

	return summary
}

// BuildCustomerData calcula o CLV médio sobre os clientes com gasto
// registrado e ordena a lista do maior para o menor gasto.
func BuildCustomerData(records []domain.CustomerRecord) domain.CustomerData {
	data := domain.CustomerData{
		TotalCustomers: len(records),
		Customers:      records,
	}

	var totalSpent float64
	for _, record := range records {
		totalSpent += record.TotalSpent
	}

	if len(records) > 0 {
		data.CLV = totalSpent / float64(len(records))
	}

	sort.Slice(data.Customers, func(i, j int) bool {
		return data.Customers[i].TotalSpent > data.Customers[j].TotalSpent
	})

	return data
}

func average(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
