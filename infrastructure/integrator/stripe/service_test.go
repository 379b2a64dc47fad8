package stripe

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	stripedomain "github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe/domain"
	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe/stripeclient/mocks"
	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

func testFilters() *domain.ReportFilters {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	return &domain.ReportFilters{StartDate: &start, EndDate: &end}
}

func monthlySubscription(id, customer, latestInvoice string, unitAmount int64) stripedomain.Subscription {
	return stripedomain.Subscription{
		ID:       id,
		Customer: customer,
		Status:   "active",
		Currency: "eur",
		Items: stripedomain.SubscriptionItemList{
			Data: []stripedomain.SubscriptionItem{
				{Price: &stripedomain.Price{UnitAmount: unitAmount, Recurring: &stripedomain.Recurring{Interval: "month"}}},
			},
		},
		StartDate:        time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC).Unix(),
		CurrentPeriodEnd: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).Unix(),
		LatestInvoice:    latestInvoice,
	}
}

func TestSaaSSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saasClient := mocks.NewMockClient(ctrl)
	agencyClient := mocks.NewMockClient(ctrl)

	subscription := monthlySubscription("sub_m1", "cus_1", "in_1", 5950)

	saasClient.EXPECT().
		ListCharges(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]stripedomain.Charge{
			{ID: "ch_1", Amount: 11900, Paid: true, Description: "Credit Pack", Created: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Unix()},
		}, nil)
	saasClient.EXPECT().
		ListCheckoutSessions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	saasClient.EXPECT().
		ListSubscriptions(gomock.Any(), "active").
		Return([]stripedomain.Subscription{subscription}, nil)
	saasClient.EXPECT().
		ListSubscriptions(gomock.Any(), "trialing").
		Return(nil, nil)
	saasClient.EXPECT().
		ListSubscriptions(gomock.Any(), "all").
		Return([]stripedomain.Subscription{subscription}, nil)
	saasClient.EXPECT().
		ListInvoices(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]stripedomain.Invoice{
			{ID: "in_1", Subscription: "sub_m1", Subtotal: 5950, Total: 4760, AmountPaid: 4760, Discount: &stripedomain.Discount{ID: "di_1"}},
		}, nil)

	service := New(&config.Config{}, saasClient, agencyClient)

	summary := service.SaaSSummary(context.Background(), testFilters())

	// Pagamento sem referência cai em compra avulsa
	assert.InDelta(t, 100.0, summary.SingleRevenue, 0.0001)
	assert.Equal(t, 1, summary.SinglePurchaseCount)

	// MRR usa o amount_paid da última fatura (4760 líquido = 40)
	assert.Equal(t, 1, summary.ActiveSubscribers)
	assert.InDelta(t, 40.0, summary.MRR, 0.0001)

	// Desconto de 1190 sobre subtotal de 5950 = 20%
	assert.InDelta(t, 20.0, summary.AvgDiscountMonthly, 0.0001)
}

func TestSaaSSummaryIncludesTrialingSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saasClient := mocks.NewMockClient(ctrl)
	agencyClient := mocks.NewMockClient(ctrl)

	trialing := monthlySubscription("sub_t1", "cus_9", "", 5950)
	trialing.Status = "trialing"

	saasClient.EXPECT().ListCharges(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	saasClient.EXPECT().ListCheckoutSessions(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	saasClient.EXPECT().ListSubscriptions(gomock.Any(), "active").Return(nil, nil)
	saasClient.EXPECT().
		ListSubscriptions(gomock.Any(), "trialing").
		Return([]stripedomain.Subscription{trialing}, nil)
	saasClient.EXPECT().
		ListSubscriptions(gomock.Any(), "all").
		Return([]stripedomain.Subscription{trialing}, nil)
	saasClient.EXPECT().ListInvoices(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	service := New(&config.Config{}, saasClient, agencyClient)

	summary := service.SaaSSummary(context.Background(), testFilters())

	// Assinatura em trial conta como assinante ativo para o MRR
	assert.Equal(t, 1, summary.ActiveSubscribers)
	assert.InDelta(t, 50.0, summary.MRR, 0.0001)
	assert.InDelta(t, 50.0, summary.MonthlyMRR, 0.0001)
}

func TestSaaSSummaryDegradesOnSourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saasClient := mocks.NewMockClient(ctrl)
	agencyClient := mocks.NewMockClient(ctrl)

	saasClient.EXPECT().
		ListCharges(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(domain.ErrDataSource, "api indisponível"))
	saasClient.EXPECT().ListCheckoutSessions(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	saasClient.EXPECT().ListSubscriptions(gomock.Any(), "active").Return(nil, nil)
	saasClient.EXPECT().ListSubscriptions(gomock.Any(), "trialing").Return(nil, nil)
	saasClient.EXPECT().ListSubscriptions(gomock.Any(), "all").Return(nil, nil)
	saasClient.EXPECT().ListInvoices(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	service := New(&config.Config{}, saasClient, agencyClient)

	summary := service.SaaSSummary(context.Background(), testFilters())

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.MRR)
	assert.NotNil(t, summary.MonthlyBreakdown)
	assert.NotNil(t, summary.MRRHistory)
}

func TestAgencySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saasClient := mocks.NewMockClient(ctrl)
	agencyClient := mocks.NewMockClient(ctrl)

	agencyClient.EXPECT().
		ListCharges(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]stripedomain.Charge{
			{ID: "ch_1", Amount: 9520, Paid: true, Created: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC).Unix()},
			{ID: "ch_2", Amount: 4760, Paid: true, Created: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC).Unix()},
		}, nil)

	service := New(&config.Config{}, saasClient, agencyClient)

	summary := service.AgencySummary(context.Background(), testFilters())

	assert.InDelta(t, 120.0, summary.TotalRevenue, 0.0001)
	assert.Equal(t, 2, summary.OrderCount)
	assert.InDelta(t, 60.0, summary.AvgBasket, 0.0001)
}

func TestAgencySummaryDegradesOnSourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saasClient := mocks.NewMockClient(ctrl)
	agencyClient := mocks.NewMockClient(ctrl)

	agencyClient.EXPECT().
		ListCharges(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDataSource)

	service := New(&config.Config{}, saasClient, agencyClient)

	summary := service.AgencySummary(context.Background(), testFilters())

	assert.Zero(t, summary.TotalRevenue)
	assert.Empty(t, summary.MonthlyBreakdown)
}

func TestCustomerData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saasClient := mocks.NewMockClient(ctrl)
	agencyClient := mocks.NewMockClient(ctrl)

	saasClient.EXPECT().
		ListCustomers(gomock.Any()).
		Return([]stripedomain.Customer{
			{ID: "cus_1", Email: "a@example.com"},
			{ID: "cus_2", Email: "b@example.com"},
		}, nil)
	saasClient.EXPECT().
		ListCustomerCharges(gomock.Any(), "cus_1").
		Return([]stripedomain.Charge{{ID: "ch_1", Amount: 11900, Paid: true}}, nil)
	saasClient.EXPECT().
		ListCustomerCharges(gomock.Any(), "cus_2").
		Return([]stripedomain.Charge{{ID: "ch_2", Amount: 35700, Paid: true}}, nil)

	service := New(&config.Config{}, saasClient, agencyClient)

	data, err := service.CustomerData(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, data.TotalCustomers)
	assert.InDelta(t, 200.0, data.CLV, 0.0001)
	assert.Equal(t, "cus_2", data.Customers[0].ID)
}

func TestCustomerDataPropagatesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saasClient := mocks.NewMockClient(ctrl)
	agencyClient := mocks.NewMockClient(ctrl)

	saasClient.EXPECT().
		ListCustomers(gomock.Any()).
		Return(nil, domain.ErrDataSource)

	service := New(&config.Config{}, saasClient, agencyClient)

	data, err := service.CustomerData(context.Background())

	assert.Nil(t, data)
	assert.ErrorIs(t, err, domain.ErrDataSource)
}
