package domain

import "time"

// Recurring descreve o intervalo de recorrência de um preço.
type Recurring struct {
	Interval string `json:"interval"`
}

// Price é o preço de um item de assinatura.
type Price struct {
	ID         string     `json:"id"`
	UnitAmount int64      `json:"unit_amount"`
	Nickname   string     `json:"nickname"`
	Product    string     `json:"product"`
	Recurring  *Recurring `json:"recurring"`
}

type SubscriptionItem struct {
	ID    string `json:"id"`
	Price *Price `json:"price"`
}

type SubscriptionItemList struct {
	Data []SubscriptionItem `json:"data"`
}

type CancellationDetails struct {
	Reason  string `json:"reason"`
	Comment string `json:"comment"`
}

// Subscription é o formato de assinatura retornado pela API de billing.
type Subscription struct {
	ID                  string               `json:"id"`
	Customer            string               `json:"customer"`
	Status              string               `json:"status"`
	Currency            string               `json:"currency"`
	Items               SubscriptionItemList `json:"items"`
	StartDate           int64                `json:"start_date"`
	CurrentPeriodEnd    int64                `json:"current_period_end"`
	CanceledAt          int64                `json:"canceled_at"`
	EndedAt             int64                `json:"ended_at"`
	LatestInvoice       string               `json:"latest_invoice"`
	CancellationDetails *CancellationDetails `json:"cancellation_details"`
}

func (s Subscription) RecordID() string { return s.ID }

// Interval retorna o intervalo de recorrência do primeiro item, ou vazio.
func (s Subscription) Interval() string {
	if len(s.Items.Data) == 0 || s.Items.Data[0].Price == nil || s.Items.Data[0].Price.Recurring == nil {
		return ""
	}
	return s.Items.Data[0].Price.Recurring.Interval
}

// UnitAmount retorna o preço de tabela do primeiro item, em centavos.
func (s Subscription) UnitAmount() int64 {
	if len(s.Items.Data) == 0 || s.Items.Data[0].Price == nil {
		return 0
	}
	return s.Items.Data[0].Price.UnitAmount
}

// PlanName retorna o nickname do preço, com fallback para o produto.
func (s Subscription) PlanName() string {
	if len(s.Items.Data) == 0 || s.Items.Data[0].Price == nil {
		return ""
	}
	if s.Items.Data[0].Price.Nickname != "" {
		return s.Items.Data[0].Price.Nickname
	}
	return s.Items.Data[0].Price.Product
}

// StartedAt converte o timestamp unix de início.
func (s Subscription) StartedAt() time.Time { return time.Unix(s.StartDate, 0).UTC() }

// TerminatedAt retorna ended_at com fallback para canceled_at, ou zero.
func (s Subscription) TerminatedAt() int64 {
	if s.EndedAt != 0 {
		return s.EndedAt
	}
	return s.CanceledAt
}

// Discount marca a presença de um desconto aplicado em uma fatura.
type Discount struct {
	ID string `json:"id"`
}

// Invoice é o formato de fatura retornado pela API de billing.
type Invoice struct {
	ID           string    `json:"id"`
	Subscription string    `json:"subscription"`
	Subtotal     int64     `json:"subtotal"`
	Total        int64     `json:"total"`
	AmountPaid   int64     `json:"amount_paid"`
	Discount     *Discount `json:"discount"`
	Status       string    `json:"status"`
	Created      int64     `json:"created"`
}

func (i Invoice) RecordID() string { return i.ID }
