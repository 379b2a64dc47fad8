package stripe

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	stripedomain "github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe/domain"
	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe/stripeclient"
	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
	"github.com/martonai/revenue-dashboard-api/internal/usecases/revenue"
)

// Integrator expõe as duas contas de billing já normalizadas para os casos de
// uso. Os resumos degradam para zero quando a fonte está indisponível; as
// operações de clientes propagam o erro.
type Integrator interface {
	SaaSSummary(ctx context.Context, filters *domain.ReportFilters) *domain.SaaSSummary
	AgencySummary(ctx context.Context, filters *domain.ReportFilters) *domain.AgencySummary
	CustomerData(ctx context.Context) (*domain.CustomerData, error)
	AccountSnapshot(ctx context.Context, source string, filters *domain.ReportFilters) (*AccountSnapshot, error)
}

// Contact é o contato de um cliente, resolvido por lookup na conta.
type Contact struct {
	Name  string
	Email string
}

// AccountSnapshot é a visão de uma conta usada pelos relatórios de clientes.
type AccountSnapshot struct {
	Source                string
	ActiveSubscriptions   []domain.Subscription
	CanceledSubscriptions []domain.Subscription
	Payments              []domain.Payment
	Contacts              map[string]Contact
}

type StripeIntegrator struct {
	cfg          *config.Config
	saasClient   stripeclient.Client
	agencyClient stripeclient.Client
}

func New(cfg *config.Config, saasClient, agencyClient stripeclient.Client) *StripeIntegrator {
	return &StripeIntegrator{
		cfg:          cfg,
		saasClient:   saasClient,
		agencyClient: agencyClient,
	}
}

// Número máximo de retrieves simultâneos contra a API de billing.
const maxConcurrent = 5

// resolveWindow aplica os defaults da janela quando o filtro vem incompleto.
func resolveWindow(filters *domain.ReportFilters) (time.Time, time.Time) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Now().UTC()

	if filters != nil && filters.StartDate != nil && !filters.StartDate.IsZero() {
		start = *filters.StartDate
	}
	if filters != nil && filters.EndDate != nil && !filters.EndDate.IsZero() {
		end = *filters.EndDate
	}

	return start, end
}

// listLiveSubscriptions busca as assinaturas vivas em duas passadas, porque o
// filtro status=active da API não inclui as assinaturas em trial.
func listLiveSubscriptions(ctx context.Context, client stripeclient.Client) ([]stripedomain.Subscription, error) {
	subscriptions, err := client.ListSubscriptions(ctx, "active")
	if err != nil {
		return nil, err
	}

	trialing, err := client.ListSubscriptions(ctx, "trialing")
	if err != nil {
		return nil, err
	}

	return append(subscriptions, trialing...), nil
}

// SaaSSummary monta o resumo completo da conta SaaS. Qualquer falha de fonte
// degrada para o resumo zerado, mantendo o relatório combinado disponível.
func (s *StripeIntegrator) SaaSSummary(ctx context.Context, filters *domain.ReportFilters) *domain.SaaSSummary {
	start, end := resolveWindow(filters)

	var (
		charges       []stripedomain.Charge
		sessions      []stripedomain.CheckoutSession
		activeSubs    []stripedomain.Subscription
		allSubs       []stripedomain.Subscription
		invoices      []stripedomain.Invoice
		chargesErr    error
		sessionsErr   error
		activeSubsErr error
		allSubsErr    error
		invoicesErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(5)

	go func() {
		defer wg.Done()
		charges, chargesErr = s.saasClient.ListCharges(ctx, start, end)
	}()
	go func() {
		defer wg.Done()
		sessions, sessionsErr = s.saasClient.ListCheckoutSessions(ctx, start, end)
	}()
	go func() {
		defer wg.Done()
		activeSubs, activeSubsErr = listLiveSubscriptions(ctx, s.saasClient)
	}()
	go func() {
		defer wg.Done()
		allSubs, allSubsErr = s.saasClient.ListSubscriptions(ctx, "all")
	}()
	go func() {
		defer wg.Done()
		invoices, invoicesErr = s.saasClient.ListInvoices(ctx, start, end)
	}()

	wg.Wait()

	for _, err := range []error{chargesErr, sessionsErr, activeSubsErr, allSubsErr, invoicesErr} {
		if err != nil {
			logrus.WithField("error", err.Error()).Error("billing: failed to fetch saas account data, degrading to empty summary")
			return emptySaaSSummary()
		}
	}

	payments := FactoryPayments(charges)
	domainSessions := FactorySessions(sessions)
	domainInvoices := FactoryInvoices(invoices)
	active := FactorySubscriptions(activeSubs)
	all := FactorySubscriptions(allSubs)

	resolver := s.buildResolver(ctx, all, domainInvoices, domainSessions, payments)

	invoiceByID := make(map[string]domain.Invoice, len(domainInvoices))
	for _, invoice := range domainInvoices {
		invoiceByID[invoice.ID] = invoice
	}
	s.applyEffectiveAmounts(ctx, active, invoiceByID)

	classified := revenue.ClassifyAll(payments, revenue.BuildSessionIndex(domainSessions), resolver)

	summary := revenue.BuildSaaSSummary(revenue.Input{
		Payments:            classified,
		ActiveSubscriptions: active,
		AllSubscriptions:    all,
		Invoices:            domainInvoices,
		Resolver:            resolver,
		Start:               start,
		End:                 end,
	})

	logrus.WithFields(logrus.Fields{
		"payments":           len(classified),
		"active_subscribers": summary.ActiveSubscribers,
		"start":              start.Format(time.DateOnly),
		"end":                end.Format(time.DateOnly),
	}).Debug("billing: saas summary built")

	return &summary
}

// buildResolver monta os lookups de intervalo a partir das assinaturas e
// faturas já carregadas e completa os ids referenciados mas ausentes com
// retrieves individuais. Falhas pontuais de retrieve são toleradas: o
// classificador tem fallback para lookups não resolvidos.
func (s *StripeIntegrator) buildResolver(
	ctx context.Context,
	subscriptions []domain.Subscription,
	invoices []domain.Invoice,
	sessions []domain.CheckoutSession,
	payments []domain.Payment,
) *revenue.MapResolver {
	resolver := revenue.NewMapResolver()

	for _, subscription := range subscriptions {
		if subscription.Interval != "" {
			resolver.Intervals[subscription.ID] = subscription.Interval
		}
	}
	for _, invoice := range invoices {
		if invoice.SubscriptionID != "" {
			resolver.InvoiceSubscriptions[invoice.ID] = invoice.SubscriptionID
		}
	}

	missingSubs := map[string]struct{}{}
	for _, session := range sessions {
		if session.SubscriptionID != "" {
			if _, ok := resolver.Intervals[session.SubscriptionID]; !ok {
				missingSubs[session.SubscriptionID] = struct{}{}
			}
		}
	}

	missingInvoices := map[string]struct{}{}
	for _, payment := range payments {
		if payment.InvoiceID != "" {
			if _, ok := resolver.InvoiceSubscriptions[payment.InvoiceID]; !ok {
				missingInvoices[payment.InvoiceID] = struct{}{}
			}
		}
	}

	semaphore := make(chan struct{}, maxConcurrent)
	var fetchWg sync.WaitGroup
	var mutex sync.Mutex

	for id := range missingSubs {
		fetchWg.Add(1)
		go func(id string) {
			defer fetchWg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			subscription, err := s.saasClient.GetSubscription(ctx, id)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"subscription_id": id,
					"error":           err.Error(),
				}).Warn("billing: failed to resolve subscription referenced by session")
				return
			}

			if interval := subscription.Interval(); interval != "" {
				mutex.Lock()
				resolver.Intervals[id] = interval
				mutex.Unlock()
			}
		}(id)
	}

	for id := range missingInvoices {
		fetchWg.Add(1)
		go func(id string) {
			defer fetchWg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			invoice, err := s.saasClient.GetInvoice(ctx, id)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"invoice_id": id,
					"error":      err.Error(),
				}).Warn("billing: failed to resolve invoice referenced by payment")
				return
			}

			if invoice.Subscription == "" {
				return
			}

			mutex.Lock()
			resolver.InvoiceSubscriptions[id] = invoice.Subscription
			mutex.Unlock()

			if _, ok := resolver.Intervals[invoice.Subscription]; ok {
				return
			}

			subscription, err := s.saasClient.GetSubscription(ctx, invoice.Subscription)
			if err != nil {
				return
			}
			if interval := subscription.Interval(); interval != "" {
				mutex.Lock()
				resolver.Intervals[invoice.Subscription] = interval
				mutex.Unlock()
			}
		}(id)
	}

	fetchWg.Wait()

	return resolver
}

// applyEffectiveAmounts sobrescreve o preço de tabela das assinaturas ativas
// com o amount_paid da última fatura, refletindo descontos vigentes. Faturas
// não resolvíveis mantêm o preço de tabela.
func (s *StripeIntegrator) applyEffectiveAmounts(ctx context.Context, subscriptions []domain.Subscription, invoices map[string]domain.Invoice) {
	semaphore := make(chan struct{}, maxConcurrent)
	var fetchWg sync.WaitGroup
	var mutex sync.Mutex

	for i := range subscriptions {
		subscription := &subscriptions[i]
		if subscription.LatestInvoiceID == "" {
			continue
		}

		if invoice, ok := invoices[subscription.LatestInvoiceID]; ok {
			if invoice.AmountPaid > 0 {
				subscription.EffectiveAmount = invoice.AmountPaid
			}
			continue
		}

		fetchWg.Add(1)
		go func(subscription *domain.Subscription) {
			defer fetchWg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			invoice, err := s.saasClient.GetInvoice(ctx, subscription.LatestInvoiceID)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"invoice_id":      subscription.LatestInvoiceID,
					"subscription_id": subscription.ID,
					"error":           err.Error(),
				}).Warn("billing: failed to resolve latest invoice, keeping list price")
				return
			}

			if invoice.AmountPaid > 0 {
				mutex.Lock()
				subscription.EffectiveAmount = invoice.AmountPaid
				mutex.Unlock()
			}
		}(subscription)
	}

	fetchWg.Wait()
}

// AgencySummary monta o resumo da conta da agência. A agência só tem
// cobranças avulsas; falha de fonte degrada para o resumo zerado.
func (s *StripeIntegrator) AgencySummary(ctx context.Context, filters *domain.ReportFilters) *domain.AgencySummary {
	start, end := resolveWindow(filters)

	charges, err := s.agencyClient.ListCharges(ctx, start, end)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("billing: failed to fetch agency account data, degrading to empty summary")
		return &domain.AgencySummary{MonthlyBreakdown: []domain.AgencyMonthBucket{}}
	}

	summary := revenue.BuildAgencySummary(FactoryPayments(charges))

	logrus.WithFields(logrus.Fields{
		"orders": summary.OrderCount,
		"start":  start.Format(time.DateOnly),
		"end":    end.Format(time.DateOnly),
	}).Debug("billing: agency summary built")

	return &summary
}

func emptySaaSSummary() *domain.SaaSSummary {
	return &domain.SaaSSummary{
		MonthlySubscribers: []domain.Subscriber{},
		YearlySubscribers:  []domain.Subscriber{},
		MonthlyBreakdown:   []domain.SaaSMonthBucket{},
		MRRHistory:         []domain.MRRHistoryBucket{},
		Payments:           []domain.ClassifiedPayment{},
	}
}
