package stripe

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe/stripeclient"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
	"github.com/martonai/revenue-dashboard-api/internal/usecases/revenue"
)

// CustomerData percorre todos os clientes da conta SaaS e soma o gasto
// líquido de cada um para o cálculo de CLV. Diferente dos resumos, uma falha
// aqui propaga: um CLV calculado sobre uma lista parcial seria silenciosamente
// errado.
func (s *StripeIntegrator) CustomerData(ctx context.Context) (*domain.CustomerData, error) {
	customers, err := s.saasClient.ListCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar os clientes da conta saas")
	}

	records := make([]domain.CustomerRecord, len(customers))

	semaphore := make(chan struct{}, maxConcurrent)
	var fetchWg sync.WaitGroup
	var mutex sync.Mutex
	var fetchErr error

	for i, customer := range customers {
		records[i].ID = customer.ID
		records[i].Email = customer.Email
		records[i].CreatedAt = customer.CreatedAt()

		fetchWg.Add(1)
		go func(i int, customerID string) {
			defer fetchWg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			charges, err := s.saasClient.ListCustomerCharges(ctx, customerID)
			if err != nil {
				mutex.Lock()
				if fetchErr == nil {
					fetchErr = errors.Wrapf(err, "erro ao listar as cobranças do cliente %s", customerID)
				}
				mutex.Unlock()
				return
			}

			var totalSpent float64
			for _, charge := range charges {
				totalSpent += revenue.NetFromCents(charge.Amount)
			}

			mutex.Lock()
			records[i].TotalSpent = totalSpent
			mutex.Unlock()
		}(i, customer.ID)
	}

	fetchWg.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}

	data := revenue.BuildCustomerData(records)

	logrus.WithField("customers", data.TotalCustomers).Debug("billing: customer data collected")

	return &data, nil
}

// AccountSnapshot carrega a visão de uma conta para os relatórios de
// clientes: assinaturas ativas e canceladas na janela, cobranças da janela e
// os contatos dos clientes referenciados.
func (s *StripeIntegrator) AccountSnapshot(ctx context.Context, source string, filters *domain.ReportFilters) (*AccountSnapshot, error) {
	client := s.clientFor(source)
	start, end := resolveWindow(filters)

	var (
		active      []domain.Subscription
		canceled    []domain.Subscription
		payments    []domain.Payment
		activeErr   error
		canceledErr error
		chargesErr  error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		subscriptions, err := client.ListSubscriptions(ctx, "active")
		active, activeErr = FactorySubscriptions(subscriptions), err
	}()
	go func() {
		defer wg.Done()
		subscriptions, err := client.ListCanceledSubscriptions(ctx, start, end)
		canceled, canceledErr = FactorySubscriptions(subscriptions), err
	}()
	go func() {
		defer wg.Done()
		charges, err := client.ListCharges(ctx, start, end)
		payments, chargesErr = FactoryPayments(charges), err
	}()

	wg.Wait()

	for _, err := range []error{activeErr, canceledErr, chargesErr} {
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao carregar a conta %s", source)
		}
	}

	snapshot := &AccountSnapshot{
		Source:                source,
		ActiveSubscriptions:   active,
		CanceledSubscriptions: canceled,
		Payments:              payments,
		Contacts:              map[string]Contact{},
	}

	s.resolveContacts(ctx, client, snapshot)

	return snapshot, nil
}

// resolveContacts busca nome e email dos clientes referenciados pelas
// assinaturas do snapshot. Pagamentos já trazem os dados de cobrança; falhas
// pontuais só deixam o contato vazio.
func (s *StripeIntegrator) resolveContacts(ctx context.Context, client stripeclient.Client, snapshot *AccountSnapshot) {
	customerIDs := map[string]struct{}{}
	for _, subscription := range snapshot.ActiveSubscriptions {
		if subscription.CustomerID != "" {
			customerIDs[subscription.CustomerID] = struct{}{}
		}
	}
	for _, subscription := range snapshot.CanceledSubscriptions {
		if subscription.CustomerID != "" {
			customerIDs[subscription.CustomerID] = struct{}{}
		}
	}

	semaphore := make(chan struct{}, maxConcurrent)
	var fetchWg sync.WaitGroup
	var mutex sync.Mutex

	for id := range customerIDs {
		fetchWg.Add(1)
		go func(id string) {
			defer fetchWg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			customer, err := client.GetCustomer(ctx, id)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"customer_id": id,
					"source":      snapshot.Source,
					"error":       err.Error(),
				}).Warn("billing: failed to resolve customer contact")
				return
			}

			mutex.Lock()
			snapshot.Contacts[id] = Contact{Name: customer.Name, Email: customer.Email}
			mutex.Unlock()
		}(id)
	}

	fetchWg.Wait()
}

func (s *StripeIntegrator) clientFor(source string) stripeclient.Client {
	if source == domain.SourceAgency {
		return s.agencyClient
	}
	return s.saasClient
}
