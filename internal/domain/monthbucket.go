package domain

// MonthBucket é o balde mensal unificado do gráfico combinado. Os seis campos
// canônicos são sempre inicializados em zero para que a mesclagem seja uma
// função total sobre todas as fontes, sem campos condicionais.
// Invariante: Total == soma dos seis campos.
type MonthBucket struct {
	Month         string  `json:"month"`
	SaaSYearly    float64 `json:"saasYearly"`
	SaaSMonthly   float64 `json:"saasMonthly"`
	SaaSSingle    float64 `json:"saasSingle"`
	AgencyStripe  float64 `json:"agencyStripe"`
	AgencySevdesk float64 `json:"agencySevdesk"`
	SheetsManual  float64 `json:"sheetsManual"`
	Total         float64 `json:"total"`
}

// SaaSMonthBucket é o balde mensal da fonte SaaS, por categoria de pagamento.
type SaaSMonthBucket struct {
	Month   string  `json:"month"`
	Yearly  float64 `json:"yearly"`
	Monthly float64 `json:"monthly"`
	Single  float64 `json:"single"`
	Total   float64 `json:"total"`
}

// AgencyMonthBucket é o balde mensal da fonte Agency (Stripe + Sevdesk).
type AgencyMonthBucket struct {
	Month          string  `json:"month"`
	StripeRevenue  float64 `json:"stripeRevenue"`
	SevdeskRevenue float64 `json:"sevdeskRevenue"`
	Total          float64 `json:"total"`
	OrderCount     int     `json:"orderCount"`
}

// SheetsMonthBucket é o balde mensal da planilha de deals manuais.
type SheetsMonthBucket struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	MRR     float64 `json:"mrr"`
	Deals   int     `json:"deals"`
}

// MRRHistoryBucket é o balde mensal do histórico de MRR, construído pelo mês
// de início (inflow) e de término (outflow) das assinaturas, não pelo mês do
// pagamento.
type MRRHistoryBucket struct {
	Month   string  `json:"month"`
	MRR     float64 `json:"mrr"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
}
