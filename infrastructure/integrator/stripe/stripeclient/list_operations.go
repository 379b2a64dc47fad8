package stripeclient

import (
	"context"
	"net/url"
	"time"

	stripedomain "github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe/domain"
)

// ListCharges retorna todas as cobranças pagas e não reembolsadas criadas na
// janela informada.
func (c *StripeClient) ListCharges(ctx context.Context, start, end time.Time) ([]stripedomain.Charge, error) {
	charges, err := fetchAllPages[stripedomain.Charge](ctx, c, "charges", createdWindow(start, end), nil)
	if err != nil {
		return nil, err
	}

	paid := make([]stripedomain.Charge, 0, len(charges))
	for _, charge := range charges {
		if charge.Paid && !charge.Refunded {
			paid = append(paid, charge)
		}
	}

	return paid, nil
}

// ListCheckoutSessions retorna todas as sessões de checkout criadas na janela.
func (c *StripeClient) ListCheckoutSessions(ctx context.Context, start, end time.Time) ([]stripedomain.CheckoutSession, error) {
	return fetchAllPages[stripedomain.CheckoutSession](ctx, c, "checkout/sessions", createdWindow(start, end), nil)
}

// ListSubscriptions retorna todas as assinaturas com o status informado
// ("all" para todas).
func (c *StripeClient) ListSubscriptions(ctx context.Context, status string) ([]stripedomain.Subscription, error) {
	params := url.Values{}
	params.Set("status", status)

	return fetchAllPages[stripedomain.Subscription](ctx, c, "subscriptions", params, nil)
}

// ListCanceledSubscriptions retorna assinaturas canceladas cujo término cai na
// janela. A listagem vem ordenada da mais recente para a mais antiga, então a
// paginação para assim que uma página só contém cancelamentos anteriores à
// janela.
func (c *StripeClient) ListCanceledSubscriptions(ctx context.Context, start, end time.Time) ([]stripedomain.Subscription, error) {
	params := url.Values{}
	params.Set("status", "canceled")

	stopEarly := func(pageData []stripedomain.Subscription) bool {
		oldest := int64(0)
		for _, sub := range pageData {
			terminatedAt := sub.TerminatedAt()
			if terminatedAt == 0 {
				continue
			}
			if oldest == 0 || terminatedAt < oldest {
				oldest = terminatedAt
			}
		}
		return oldest != 0 && oldest < start.Unix()
	}

	subscriptions, err := fetchAllPages[stripedomain.Subscription](ctx, c, "subscriptions", params, stopEarly)
	if err != nil {
		return nil, err
	}

	inWindow := make([]stripedomain.Subscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		terminatedAt := sub.TerminatedAt()
		if terminatedAt == 0 {
			continue
		}
		if terminatedAt >= start.Unix() && terminatedAt <= end.Unix() {
			inWindow = append(inWindow, sub)
		}
	}

	return inWindow, nil
}

// ListInvoices retorna todas as faturas pagas criadas na janela.
func (c *StripeClient) ListInvoices(ctx context.Context, start, end time.Time) ([]stripedomain.Invoice, error) {
	params := createdWindow(start, end)
	params.Set("status", "paid")

	return fetchAllPages[stripedomain.Invoice](ctx, c, "invoices", params, nil)
}

// ListCustomers retorna todos os clientes da conta, sem filtro de data.
func (c *StripeClient) ListCustomers(ctx context.Context) ([]stripedomain.Customer, error) {
	return fetchAllPages[stripedomain.Customer](ctx, c, "customers", url.Values{}, nil)
}

// ListCustomerCharges retorna as cobranças pagas e não reembolsadas de um
// cliente específico, usado no cálculo de gasto de vida útil (CLV).
func (c *StripeClient) ListCustomerCharges(ctx context.Context, customerID string) ([]stripedomain.Charge, error) {
	params := url.Values{}
	params.Set("customer", customerID)

	charges, err := fetchAllPages[stripedomain.Charge](ctx, c, "charges", params, nil)
	if err != nil {
		return nil, err
	}

	paid := make([]stripedomain.Charge, 0, len(charges))
	for _, charge := range charges {
		if charge.Paid && !charge.Refunded {
			paid = append(paid, charge)
		}
	}

	return paid, nil
}
