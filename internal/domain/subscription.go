package domain

import "time"

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusTrialing = "trialing"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusEnded    = "ended"
)

const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// Subscription é a visão normalizada de uma assinatura da fonte de billing.
// O ciclo de vida é controlado pela fonte; aqui só lemos snapshots.
type Subscription struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Status     string `json:"status"`
	Interval   string `json:"interval"`
	UnitAmount int64  `json:"unitAmount"`
	// EffectiveAmount é o amount_paid da última fatura quando resolvível,
	// com fallback para o preço de tabela; reflete o preço com desconto.
	EffectiveAmount     int64      `json:"-"`
	Currency            string     `json:"currency"`
	PlanName            string     `json:"plan,omitempty"`
	LatestInvoiceID     string     `json:"-"`
	StartDate           time.Time  `json:"startDate"`
	CurrentPeriodEnd    time.Time  `json:"currentPeriodEnd"`
	CanceledAt          *time.Time `json:"canceledAt,omitempty"`
	EndedAt             *time.Time `json:"endedAt,omitempty"`
	CancellationReason  string     `json:"cancellationReason,omitempty"`
	CancellationComment string     `json:"cancellationComment,omitempty"`
}

// IsTerminal informa se a assinatura está cancelada ou encerrada.
func (s Subscription) IsTerminal() bool {
	return s.Status == SubscriptionStatusCanceled || s.Status == SubscriptionStatusEnded
}

// TerminatedAt retorna o timestamp de término (ended_at com fallback para
// canceled_at), ou nil quando a assinatura nunca terminou.
func (s Subscription) TerminatedAt() *time.Time {
	if s.EndedAt != nil {
		return s.EndedAt
	}
	return s.CanceledAt
}

// Subscriber é a entrada de um assinante ativo na resposta do relatório.
type Subscriber struct {
	ID                string    `json:"id"`
	CustomerID        string    `json:"customerId"`
	Amount            float64   `json:"amount"`
	MonthlyEquivalent float64   `json:"monthlyEquivalent,omitempty"`
	StartDate         time.Time `json:"startDate"`
	CurrentPeriodEnd  time.Time `json:"currentPeriodEnd"`
}

// CustomerRecord agrega o gasto líquido total de um cliente, usado no CLV.
type CustomerRecord struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created"`
	TotalSpent float64   `json:"totalSpent"`
}

// CustomerData é o resultado da coleta de clientes para o cálculo de CLV.
type CustomerData struct {
	TotalCustomers int              `json:"totalCustomers"`
	CLV            float64          `json:"clv"`
	Customers      []CustomerRecord `json:"customerData"`
}
