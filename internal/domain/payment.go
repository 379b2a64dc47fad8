package domain

import "time"

// Category representa a classificação de um pagamento por tipo de receita.
type Category string

const (
	CategorySingle  Category = "single"
	CategoryMonthly Category = "monthly"
	CategoryYearly  Category = "yearly"
)

// Payment é um snapshot imutável de uma cobrança vinda da fonte de billing.
// Amount está em centavos (valor bruto, com IVA).
type Payment struct {
	ID              string    `json:"id"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	CreatedAt       time.Time `json:"createdAt"`
	Status          string    `json:"status"`
	InvoiceID       string    `json:"invoiceId,omitempty"`
	PaymentIntentID string    `json:"paymentIntentId,omitempty"`
	CustomerID      string    `json:"customerId,omitempty"`
	CustomerName    string    `json:"customerName,omitempty"`
	CustomerEmail   string    `json:"customerEmail,omitempty"`
	Description     string    `json:"description,omitempty"`
}

// ClassifiedPayment é um Payment com a categoria atribuída pelo classificador.
// A categoria é atribuída uma única vez e nunca revisada.
type ClassifiedPayment struct {
	Payment
	Category    Category  `json:"category"`
	GrossAmount float64   `json:"grossAmount"`
	NetAmount   float64   `json:"netAmount"`
	Date        time.Time `json:"date"`
}

// CheckoutSession é o contexto de checkout usado pelo classificador para
// identificar compras avulsas e assinaturas.
type CheckoutSession struct {
	ID              string
	PaymentIntentID string
	Mode            string
	SubscriptionID  string
}

const (
	// SessionModePayment indica uma compra avulsa no checkout.
	SessionModePayment = "payment"
	// SessionModeSubscription indica a criação de uma assinatura no checkout.
	SessionModeSubscription = "subscription"
)

// Invoice é a visão normalizada de uma fatura paga, usada para o cálculo de
// descontos e para resolver o preço efetivo de assinaturas.
type Invoice struct {
	ID             string
	SubscriptionID string
	Subtotal       int64
	Total          int64
	AmountPaid     int64
	HasDiscount    bool
}
