package domain

import "time"

// Valuations são as estimativas de valuation sobre o Expected ARR.
type Valuations struct {
	ThreeX float64 `json:"3x"`
	FiveX  float64 `json:"5x"`
	EightX float64 `json:"8x"`
}

// OverviewMetrics são as métricas de topo combinando todas as fontes.
type OverviewMetrics struct {
	TotalRevenue float64    `json:"totalRevenue"`
	MRR          float64    `json:"mrr"`
	AdjustedMRR  float64    `json:"adjustedMRR"`
	ARR          float64    `json:"arr"`
	ExpectedARR  float64    `json:"expectedARR"`
	Valuations   Valuations `json:"valuations"`
	TotalOrders  int        `json:"totalOrders"`
}

// SaaSMetrics é a seção SaaS da resposta, combinando Stripe e planilha.
type SaaSMetrics struct {
	Revenue             float64            `json:"revenue"`
	MRR                 float64            `json:"mrr"`
	MonthlyMRR          float64            `json:"monthlyMRR"`
	YearlyMRR           float64            `json:"yearlyMRR"`
	SheetsMRR           float64            `json:"sheetsMRR"`
	ARR                 float64            `json:"arr"`
	ActiveSubscribers   int                `json:"activeSubscribers"`
	MonthlySubscribers  []Subscriber       `json:"monthlySubscribers"`
	YearlySubscribers   []Subscriber       `json:"yearlySubscribers"`
	SinglePurchaseCount int                `json:"singlePurchaseCount"`
	SingleRevenue       float64            `json:"singleRevenue"`
	MonthlyRevenue      float64            `json:"monthlyRevenue"`
	YearlyRevenue       float64            `json:"yearlyRevenue"`
	AvgBasketMonthly    float64            `json:"avgBasketMonthly"`
	AvgBasketYearly     float64            `json:"avgBasketYearly"`
	AvgBasketSingle     float64            `json:"avgBasketSingle"`
	ChurnRate           float64            `json:"churnRate"`
	ChurnCount          int                `json:"churnCount"`
	NewSubscriptions    int                `json:"newSubscriptions"`
	MonthlyBreakdown    []SaaSMonthBucket  `json:"monthlyBreakdown"`
	MRRHistory          []MRRHistoryBucket `json:"mrrHistory"`
	InflowOutflow       []MRRHistoryBucket `json:"inflowOutflow"`
}

// AgencyMetrics é a seção da agência na resposta.
type AgencyMetrics struct {
	Revenue           float64             `json:"revenue"`
	OrderCount        int                 `json:"orderCount"`
	AvgBasket         float64             `json:"avgBasket"`
	StripeRevenue     float64             `json:"stripeRevenue"`
	SevdeskRevenue    float64             `json:"sevdeskRevenue"`
	SevdeskOrderCount int                 `json:"sevdeskOrderCount"`
	SevdeskAvgBasket  float64             `json:"sevdeskAvgBasket"`
	MonthlyBreakdown  []AgencyMonthBucket `json:"monthlyBreakdown"`
}

// InsightMetrics são as métricas de produto e de clientes.
type InsightMetrics struct {
	TotalUserbase          int     `json:"totalUserbase"`
	ActiveSubscribers      int     `json:"activeSubscribers"`
	ConversionFreeToSub    float64 `json:"conversionFreeToSub"`
	ConversionFreeToPaying float64 `json:"conversionFreeToPaying"`
	AvgDiscountMonthly     float64 `json:"avgDiscountMonthly"`
	AvgDiscountYearly      float64 `json:"avgDiscountYearly"`
	AvgDiscountSingle      float64 `json:"avgDiscountSingle"`
	AvgUsagePercent        float64 `json:"avgUsagePercent"`
	SingleBuyersCount      int     `json:"singleBuyersCount"`
	CLV                    float64 `json:"clv"`
	ARPU                   float64 `json:"arpu"`
	AvgTimeToFirstPurchase float64 `json:"avgTimeToFirstPurchase"`
}

// SheetsOverview é o resumo enxuto da planilha exposto na resposta.
type SheetsOverview struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalMRR     float64 `json:"totalMRR"`
	DealCount    int     `json:"dealCount"`
}

// DashboardReport é o contrato completo da resposta do dashboard.
type DashboardReport struct {
	Overview                 OverviewMetrics `json:"overview"`
	SaaS                     SaaSMetrics     `json:"saas"`
	Agency                   AgencyMetrics   `json:"agency"`
	Insights                 InsightMetrics  `json:"insights"`
	CombinedMonthlyBreakdown []MonthBucket   `json:"combinedMonthlyBreakdown"`
	Sheets                   SheetsOverview  `json:"sheetsData"`
	Filters                  *ReportFilters  `json:"-"`
	GeneratedAt              time.Time       `json:"timestamp"`
}
