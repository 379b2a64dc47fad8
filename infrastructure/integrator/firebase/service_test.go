package firebase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	firebasedomain "github.com/martonai/revenue-dashboard-api/infrastructure/integrator/firebase/domain"
	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/firebase/firebaseclient/mocks"
	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

func TestUserbaseSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	firstPurchase := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	users := []firebasedomain.UserRecord{
		{
			ID:                  "u1",
			CreatedAt:           time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			HasSubscription:     true,
			SubscriptionStatus:  "active",
			FirstPurchaseDate:   &firstPurchase,
			VideosUsedThisMonth: 5,
			MonthlyVideoLimit:   10,
		},
		{
			ID:           "u2",
			CreatedAt:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			HasPurchased: true,
		},
		{
			ID:        "u3",
			CreatedAt: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "u4",
			CreatedAt: time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().ListUsers(gomock.Any()).Return(users, nil)
	client.EXPECT().CountProjects(gomock.Any()).Return(42, nil)

	service := New(&config.Config{}, client)

	summary := service.UserbaseSummary(context.Background(), &domain.ReportFilters{StartDate: &start, EndDate: &end})

	assert.Equal(t, 4, summary.TotalUserbase)
	assert.Equal(t, 1, summary.ActiveSubscribers)
	assert.Equal(t, 2, summary.PayingUsers)
	assert.Equal(t, 2, summary.NewUsersInPeriod)
	assert.Equal(t, 1, summary.SingleBuyersCount)
	assert.Equal(t, 42, summary.ProjectCount)

	assert.InDelta(t, 25.0, summary.ConversionFreeToSub, 0.0001)
	assert.InDelta(t, 50.0, summary.ConversionFreeToPaying, 0.0001)

	// u1 levou 10 dias até a primeira compra
	assert.InDelta(t, 10.0, summary.AvgTimeToFirstPurchase, 0.0001)

	// u1 usou 5 de 10 vídeos
	assert.InDelta(t, 50.0, summary.AvgUsagePercent, 0.0001)
}

func TestUserbaseSummaryDegradesOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().ListUsers(gomock.Any()).Return(nil, domain.ErrDataSource)

	service := New(&config.Config{}, client)

	summary := service.UserbaseSummary(context.Background(), nil)

	assert.Zero(t, summary.TotalUserbase)
	assert.Zero(t, summary.ActiveSubscribers)
	assert.Zero(t, summary.ConversionFreeToSub)
}

func TestVideoLimitFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		user     firebasedomain.UserRecord
		expected float64
	}{
		{
			name:     "Limite mensal explícito",
			user:     firebasedomain.UserRecord{MonthlyVideoLimit: 20},
			expected: 20,
		},
		{
			name:     "Plano anual divide o limite por doze",
			user:     firebasedomain.UserRecord{SubscriptionInterval: "year", YearlyVideoLimit: 120},
			expected: 10,
		},
		{
			name:     "Sem limite registrado usa o default",
			user:     firebasedomain.UserRecord{},
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.VideoLimit())
		})
	}
}
