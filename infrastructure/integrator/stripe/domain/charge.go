package domain

import "time"

// Charge é o formato de cobrança retornado pela API de billing.
type Charge struct {
	ID             string         `json:"id"`
	Amount         int64          `json:"amount"`
	Currency       string         `json:"currency"`
	Created        int64          `json:"created"`
	Status         string         `json:"status"`
	Paid           bool           `json:"paid"`
	Refunded       bool           `json:"refunded"`
	Description    string         `json:"description"`
	Invoice        string         `json:"invoice"`
	PaymentIntent  string         `json:"payment_intent"`
	Customer       string         `json:"customer"`
	ReceiptEmail   string         `json:"receipt_email"`
	CustomerEmail  string         `json:"customer_email"`
	BillingDetails BillingDetails `json:"billing_details"`
}

type BillingDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c Charge) RecordID() string { return c.ID }

// CreatedAt converte o timestamp unix da cobrança.
func (c Charge) CreatedAt() time.Time { return time.Unix(c.Created, 0).UTC() }

// CheckoutSession identifica o modo de checkout de um pagamento.
type CheckoutSession struct {
	ID            string `json:"id"`
	PaymentIntent string `json:"payment_intent"`
	Mode          string `json:"mode"`
	Subscription  string `json:"subscription"`
	Created       int64  `json:"created"`
}

func (s CheckoutSession) RecordID() string { return s.ID }

// Customer é o formato de cliente retornado pela API de billing.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Created int64  `json:"created"`
}

func (c Customer) RecordID() string { return c.ID }

func (c Customer) CreatedAt() time.Time { return time.Unix(c.Created, 0).UTC() }
