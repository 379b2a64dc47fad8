package stripeclient

import (
	"context"

	stripedomain "github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe/domain"
)

// GetSubscription recupera uma assinatura pelo id.
func (c *StripeClient) GetSubscription(ctx context.Context, id string) (*stripedomain.Subscription, error) {
	var subscription stripedomain.Subscription
	if err := c.doGet(ctx, "subscriptions/"+id, nil, &subscription); err != nil {
		return nil, err
	}

	return &subscription, nil
}

// GetInvoice recupera uma fatura pelo id.
func (c *StripeClient) GetInvoice(ctx context.Context, id string) (*stripedomain.Invoice, error) {
	var invoice stripedomain.Invoice
	if err := c.doGet(ctx, "invoices/"+id, nil, &invoice); err != nil {
		return nil, err
	}

	return &invoice, nil
}

// GetCustomer recupera um cliente pelo id.
func (c *StripeClient) GetCustomer(ctx context.Context, id string) (*stripedomain.Customer, error) {
	var customer stripedomain.Customer
	if err := c.doGet(ctx, "customers/"+id, nil, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}
