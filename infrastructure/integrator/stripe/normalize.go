package stripe

import (
	"time"

	stripedomain "github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe/domain"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

// FactoryPayment converte uma cobrança do formato da API para o domínio.
func FactoryPayment(charge stripedomain.Charge) domain.Payment {
	email := charge.ReceiptEmail
	if email == "" {
		email = charge.BillingDetails.Email
	}
	if email == "" {
		email = charge.CustomerEmail
	}

	return domain.Payment{
		ID:              charge.ID,
		Amount:          charge.Amount,
		Currency:        charge.Currency,
		CreatedAt:       charge.CreatedAt(),
		Status:          charge.Status,
		InvoiceID:       charge.Invoice,
		PaymentIntentID: charge.PaymentIntent,
		CustomerID:      charge.Customer,
		CustomerName:    charge.BillingDetails.Name,
		CustomerEmail:   email,
		Description:     charge.Description,
	}
}

func FactoryPayments(charges []stripedomain.Charge) []domain.Payment {
	payments := make([]domain.Payment, 0, len(charges))
	for _, charge := range charges {
		payments = append(payments, FactoryPayment(charge))
	}
	return payments
}

// FactorySession converte uma sessão de checkout para o domínio.
func FactorySession(session stripedomain.CheckoutSession) domain.CheckoutSession {
	return domain.CheckoutSession{
		ID:              session.ID,
		PaymentIntentID: session.PaymentIntent,
		Mode:            session.Mode,
		SubscriptionID:  session.Subscription,
	}
}

func FactorySessions(sessions []stripedomain.CheckoutSession) []domain.CheckoutSession {
	converted := make([]domain.CheckoutSession, 0, len(sessions))
	for _, session := range sessions {
		converted = append(converted, FactorySession(session))
	}
	return converted
}

// FactorySubscription converte uma assinatura para o domínio. EffectiveAmount
// nasce como o preço de tabela; o serviço sobrescreve com o amount_paid da
// última fatura quando ela for resolvível.
func FactorySubscription(subscription stripedomain.Subscription) domain.Subscription {
	converted := domain.Subscription{
		ID:               subscription.ID,
		CustomerID:       subscription.Customer,
		Status:           subscription.Status,
		Interval:         subscription.Interval(),
		UnitAmount:       subscription.UnitAmount(),
		EffectiveAmount:  subscription.UnitAmount(),
		Currency:         subscription.Currency,
		PlanName:         subscription.PlanName(),
		LatestInvoiceID:  subscription.LatestInvoice,
		StartDate:        subscription.StartedAt(),
		CurrentPeriodEnd: time.Unix(subscription.CurrentPeriodEnd, 0).UTC(),
	}

	if subscription.CanceledAt != 0 {
		canceledAt := time.Unix(subscription.CanceledAt, 0).UTC()
		converted.CanceledAt = &canceledAt
	}

	if subscription.EndedAt != 0 {
		endedAt := time.Unix(subscription.EndedAt, 0).UTC()
		converted.EndedAt = &endedAt
	}

	if subscription.CancellationDetails != nil {
		converted.CancellationReason = subscription.CancellationDetails.Reason
		converted.CancellationComment = subscription.CancellationDetails.Comment
	}

	return converted
}

func FactorySubscriptions(subscriptions []stripedomain.Subscription) []domain.Subscription {
	converted := make([]domain.Subscription, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		converted = append(converted, FactorySubscription(subscription))
	}
	return converted
}

// FactoryInvoice converte uma fatura para o domínio.
func FactoryInvoice(invoice stripedomain.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:             invoice.ID,
		SubscriptionID: invoice.Subscription,
		Subtotal:       invoice.Subtotal,
		Total:          invoice.Total,
		AmountPaid:     invoice.AmountPaid,
		HasDiscount:    invoice.Discount != nil,
	}
}

func FactoryInvoices(invoices []stripedomain.Invoice) []domain.Invoice {
	converted := make([]domain.Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		converted = append(converted, FactoryInvoice(invoice))
	}
	return converted
}
