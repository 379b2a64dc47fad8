package domain

import "time"

const (
	SourceSaaS   = "marton.ai"
	SourceAgency = "Raumblick360"
)

// ChurnedCustomer é um assinante que cancelou dentro da janela consultada.
type ChurnedCustomer struct {
	ID                  string     `json:"id"`
	Source              string     `json:"source"`
	CustomerName        string     `json:"customerName"`
	CustomerEmail       string     `json:"customerEmail"`
	Plan                string     `json:"plan"`
	Amount              float64    `json:"amount"`
	Currency            string     `json:"currency"`
	Interval            string     `json:"interval"`
	Status              string     `json:"status"`
	StartDate           time.Time  `json:"startDate"`
	CanceledAt          *time.Time `json:"canceledAt"`
	EndedAt             *time.Time `json:"endedAt"`
	CancellationReason  string     `json:"cancellationReason,omitempty"`
	CancellationComment string     `json:"cancellationComment,omitempty"`
	DurationDays        int        `json:"durationDays"`
	MRR                 float64    `json:"mrr"`
}

// ChurnSummary resume o relatório de cancelamentos.
type ChurnSummary struct {
	TotalChurned        int            `json:"totalChurned"`
	TotalMRRLost        float64        `json:"totalMrrLost"`
	AvgSubscriptionDays int            `json:"avgSubscriptionDays"`
	ReasonBreakdown     map[string]int `json:"reasonBreakdown"`
}

// ChurnReport é a resposta do relatório de clientes perdidos.
type ChurnReport struct {
	ChurnedCustomers []ChurnedCustomer `json:"churnedCustomers"`
	Summary          ChurnSummary      `json:"summary"`
}

// SubscriberEntry é um assinante ativo na listagem de clientes.
type SubscriberEntry struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	Source           string    `json:"source"`
	CustomerName     string    `json:"customerName"`
	CustomerEmail    string    `json:"customerEmail"`
	Plan             string    `json:"plan"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Interval         string    `json:"interval"`
	Status           string    `json:"status"`
	StartDate        time.Time `json:"startDate"`
	CurrentPeriodEnd time.Time `json:"currentPeriodEnd"`
}

// OneTimeBuyerEntry é um comprador avulso na listagem de clientes.
type OneTimeBuyerEntry struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Source        string    `json:"source"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

// CustomerListSummary resume a listagem de clientes.
type CustomerListSummary struct {
	TotalSubscribers int `json:"totalSubscribers"`
	TotalOneTime     int `json:"totalOneTime"`
	TotalCustomers   int `json:"totalCustomers"`
}

// CustomerListReport é a resposta da listagem de clientes das duas contas.
type CustomerListReport struct {
	Subscribers   []SubscriberEntry   `json:"subscribers"`
	OneTimeBuyers []OneTimeBuyerEntry `json:"oneTimeBuyers"`
	Summary       CustomerListSummary `json:"summary"`
}
