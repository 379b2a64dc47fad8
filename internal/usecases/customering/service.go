package customering

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

// Valores default dos campos de exibição quando a fonte não informa.
const (
	unknownCustomer = "Unbekannt"
	defaultPlan     = "Standard"
	noReasonGiven   = "Nicht angegeben"
)

// Customering expõe os relatórios de clientes das duas contas de billing.
type Customering interface {
	ChurnReport(ctx context.Context, filters *domain.ReportFilters) (*domain.ChurnReport, error)
	CustomerList(ctx context.Context, filters *domain.ReportFilters) (*domain.CustomerListReport, error)
}

type Service struct {
	stripeService stripe.Integrator
}

func NewService(stripeService stripe.Integrator) *Service {
	return &Service{stripeService: stripeService}
}

// fetchSnapshots carrega as duas contas em paralelo. Diferente dos resumos do
// dashboard, uma conta indisponível derruba o relatório: uma lista de
// clientes pela metade não serve para cobrança.
func (s *Service) fetchSnapshots(ctx context.Context, filters *domain.ReportFilters) (*stripe.AccountSnapshot, *stripe.AccountSnapshot, error) {
	var saas, agency *stripe.AccountSnapshot

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		saas, err = s.stripeService.AccountSnapshot(groupCtx, domain.SourceSaaS, filters)
		return err
	})
	group.Go(func() error {
		var err error
		agency, err = s.stripeService.AccountSnapshot(groupCtx, domain.SourceAgency, filters)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, nil, errors.Wrap(err, "erro ao carregar as contas de billing")
	}

	return saas, agency, nil
}

// ChurnReport lista as assinaturas canceladas na janela, nas duas contas,
// ordenadas do cancelamento mais recente para o mais antigo.
func (s *Service) ChurnReport(ctx context.Context, filters *domain.ReportFilters) (*domain.ChurnReport, error) {
	saas, agency, err := s.fetchSnapshots(ctx, filters)
	if err != nil {
		return nil, err
	}

	churned := make([]domain.ChurnedCustomer, 0, len(saas.CanceledSubscriptions)+len(agency.CanceledSubscriptions))
	for _, snapshot := range []*stripe.AccountSnapshot{saas, agency} {
		for _, subscription := range snapshot.CanceledSubscriptions {
			churned = append(churned, churnedFromSubscription(subscription, snapshot))
		}
	}

	sort.Slice(churned, func(i, j int) bool {
		return canceledAtOrZero(churned[i]).After(canceledAtOrZero(churned[j]))
	})

	summary := domain.ChurnSummary{
		TotalChurned:    len(churned),
		ReasonBreakdown: map[string]int{},
	}

	var durationSum int
	for _, customer := range churned {
		summary.TotalMRRLost += customer.MRR
		durationSum += customer.DurationDays

		reason := customer.CancellationReason
		if reason == "" {
			reason = noReasonGiven
		}
		summary.ReasonBreakdown[reason]++
	}

	if len(churned) > 0 {
		summary.AvgSubscriptionDays = int(math.Round(float64(durationSum) / float64(len(churned))))
	}

	logrus.WithField("churned", summary.TotalChurned).Debug("customering: churn report built")

	return &domain.ChurnReport{ChurnedCustomers: churned, Summary: summary}, nil
}

func churnedFromSubscription(subscription domain.Subscription, snapshot *stripe.AccountSnapshot) domain.ChurnedCustomer {
	name, email := contactFor(subscription.CustomerID, snapshot)

	// Valores exibidos como vêm da fonte, em bruto
	amount := float64(subscription.UnitAmount) / 100

	durationDays := 0
	if subscription.CanceledAt != nil {
		durationDays = int(math.Round(subscription.CanceledAt.Sub(subscription.StartDate).Hours() / 24))
	}

	return domain.ChurnedCustomer{
		ID:                  subscription.ID,
		Source:              snapshot.Source,
		CustomerName:        name,
		CustomerEmail:       email,
		Plan:                planOrDefault(subscription.PlanName),
		Amount:              amount,
		Currency:            currencyOrDefault(subscription.Currency),
		Interval:            intervalOrDefault(subscription.Interval),
		Status:              subscription.Status,
		StartDate:           subscription.StartDate,
		CanceledAt:          subscription.CanceledAt,
		EndedAt:             subscription.EndedAt,
		CancellationReason:  subscription.CancellationReason,
		CancellationComment: subscription.CancellationComment,
		DurationDays:        durationDays,
		MRR:                 amount,
	}
}

// CustomerList junta os assinantes ativos das duas contas com os compradores
// avulsos da janela.
func (s *Service) CustomerList(ctx context.Context, filters *domain.ReportFilters) (*domain.CustomerListReport, error) {
	saas, agency, err := s.fetchSnapshots(ctx, filters)
	if err != nil {
		return nil, err
	}

	subscribers := make([]domain.SubscriberEntry, 0, len(saas.ActiveSubscriptions)+len(agency.ActiveSubscriptions))
	oneTimeBuyers := make([]domain.OneTimeBuyerEntry, 0)

	for _, snapshot := range []*stripe.AccountSnapshot{saas, agency} {
		for _, subscription := range snapshot.ActiveSubscriptions {
			name, email := contactFor(subscription.CustomerID, snapshot)

			subscribers = append(subscribers, domain.SubscriberEntry{
				ID:               subscription.ID,
				Type:             "subscription",
				Source:           snapshot.Source,
				CustomerName:     name,
				CustomerEmail:    email,
				Plan:             planOrDefault(subscription.PlanName),
				Amount:           float64(subscription.UnitAmount) / 100,
				Currency:         currencyOrDefault(subscription.Currency),
				Interval:         intervalOrDefault(subscription.Interval),
				Status:           subscription.Status,
				StartDate:        subscription.StartDate,
				CurrentPeriodEnd: subscription.CurrentPeriodEnd,
			})
		}

		for _, payment := range snapshot.Payments {
			// Cobranças de fatura pertencem a assinaturas, não à lista avulsa
			if payment.InvoiceID != "" || payment.Status != "succeeded" {
				continue
			}

			name := payment.CustomerName
			if name == "" {
				name = payment.CustomerEmail
			}
			if name == "" {
				name = unknownCustomer
			}

			description := payment.Description
			if description == "" {
				description = "Einzelkauf"
			}

			oneTimeBuyers = append(oneTimeBuyers, domain.OneTimeBuyerEntry{
				ID:            payment.ID,
				Type:          "one_time",
				Source:        snapshot.Source,
				CustomerName:  name,
				CustomerEmail: payment.CustomerEmail,
				Description:   description,
				Amount:        float64(payment.Amount) / 100,
				Currency:      currencyOrDefault(payment.Currency),
				Status:        payment.Status,
				Date:          payment.CreatedAt,
			})
		}
	}

	logrus.WithFields(logrus.Fields{
		"subscribers": len(subscribers),
		"one_time":    len(oneTimeBuyers),
	}).Debug("customering: customer list built")

	return &domain.CustomerListReport{
		Subscribers:   subscribers,
		OneTimeBuyers: oneTimeBuyers,
		Summary: domain.CustomerListSummary{
			TotalSubscribers: len(subscribers),
			TotalOneTime:     len(oneTimeBuyers),
			TotalCustomers:   len(subscribers) + len(oneTimeBuyers),
		},
	}, nil
}

func contactFor(customerID string, snapshot *stripe.AccountSnapshot) (string, string) {
	contact := snapshot.Contacts[customerID]

	name := contact.Name
	if name == "" {
		name = contact.Email
	}
	if name == "" {
		name = unknownCustomer
	}

	return name, contact.Email
}

func planOrDefault(plan string) string {
	if plan == "" {
		return defaultPlan
	}
	return plan
}

func intervalOrDefault(interval string) string {
	if interval == "" {
		return domain.IntervalMonth
	}
	return interval
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return "EUR"
	}
	return strings.ToUpper(currency)
}

func canceledAtOrZero(customer domain.ChurnedCustomer) time.Time {
	if customer.CanceledAt != nil {
		return *customer.CanceledAt
	}
	return time.Time{}
}
