package domain

import "time"

// ReportFilters delimita a janela de datas de um relatório.
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// SaaSSummary é o resumo normalizado da conta de billing do SaaS.
type SaaSSummary struct {
	TotalRevenue        float64             `json:"totalRevenue"`
	SingleRevenue       float64             `json:"singleRevenue"`
	MonthlyRevenue      float64             `json:"monthlyRevenue"`
	YearlyRevenue       float64             `json:"yearlyRevenue"`
	MRR                 float64             `json:"mrr"`
	MonthlyMRR          float64             `json:"monthlyMRR"`
	YearlyMRR           float64             `json:"yearlyMRR"`
	ARR                 float64             `json:"arr"`
	ActiveSubscribers   int                 `json:"activeSubscribers"`
	MonthlySubscribers  []Subscriber        `json:"monthlySubscribers"`
	YearlySubscribers   []Subscriber        `json:"yearlySubscribers"`
	SinglePurchaseCount int                 `json:"singlePurchaseCount"`
	AvgBasketMonthly    float64             `json:"avgBasketMonthly"`
	AvgBasketYearly     float64             `json:"avgBasketYearly"`
	AvgBasketSingle     float64             `json:"avgBasketSingle"`
	AvgDiscountMonthly  float64             `json:"avgDiscountMonthly"`
	AvgDiscountYearly   float64             `json:"avgDiscountYearly"`
	AvgDiscountSingle   float64             `json:"avgDiscountSingle"`
	ChurnCount          int                 `json:"churnCount"`
	ChurnRate           float64             `json:"churnRate"`
	NewSubscriptions    int                 `json:"newSubscriptions"`
	MonthlyBreakdown    []SaaSMonthBucket   `json:"monthlyBreakdown"`
	MRRHistory          []MRRHistoryBucket  `json:"mrrHistory"`
	Payments            []ClassifiedPayment `json:"-"`
}

// AgencySummary é o resumo normalizado da conta de billing da agência.
// Os campos Sevdesk são placeholders até a integração existir.
type AgencySummary struct {
	TotalRevenue      float64             `json:"totalRevenue"`
	OrderCount        int                 `json:"orderCount"`
	AvgBasket         float64             `json:"avgBasket"`
	SevdeskRevenue    float64             `json:"sevdeskRevenue"`
	SevdeskOrderCount int                 `json:"sevdeskOrderCount"`
	SevdeskAvgBasket  float64             `json:"sevdeskAvgBasket"`
	MonthlyBreakdown  []AgencyMonthBucket `json:"monthlyBreakdown"`
}

// SheetDeal é uma linha da planilha de deals manuais, já com valores
// decodificados (a planilha usa vírgula decimal e datas DD.MM.YYYY).
type SheetDeal struct {
	Date          time.Time `json:"date"`
	Customer      string    `json:"customer"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	Credits       int       `json:"credits"`
	PricePerVideo float64   `json:"pricePerVideo"`
	MRR           float64   `json:"mrr"`
}

// SheetsSummary é o resumo normalizado da planilha de deals manuais.
type SheetsSummary struct {
	TotalRevenue            float64             `json:"totalRevenue"`
	TotalMRR                float64             `json:"totalMRR"`
	TotalCredits            int                 `json:"totalCredits"`
	ActiveManualSubscribers int                 `json:"activeManualSubscribers"`
	DealCount               int                 `json:"dealCount"`
	MonthlyDeals            int                 `json:"monthlyDeals"`
	YearlyDeals             int                 `json:"yearlyDeals"`
	SingleDeals             int                 `json:"singleDeals"`
	MonthlyBreakdown        []SheetsMonthBucket `json:"monthlyBreakdown"`
	Deals                   []SheetDeal         `json:"rawData"`
}

// UserbaseSummary é o resumo normalizado da base de usuários do produto.
type UserbaseSummary struct {
	TotalUserbase          int     `json:"totalUserbase"`
	ActiveSubscribers      int     `json:"activeSubscribers"`
	PayingUsers            int     `json:"payingUsers"`
	ConversionFreeToSub    float64 `json:"conversionFreeToSub"`
	ConversionFreeToPaying float64 `json:"conversionFreeToPaying"`
	AvgTimeToFirstPurchase float64 `json:"avgTimeToFirstPurchase"`
	AvgUsagePercent        float64 `json:"avgUsagePercent"`
	SingleBuyersCount      int     `json:"singleBuyersCount"`
	NewUsersInPeriod       int     `json:"newUsersInPeriod"`
	ProjectCount           int     `json:"projectCount"`
}
