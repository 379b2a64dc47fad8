package firebase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	firebasedomain "github.com/martonai/revenue-dashboard-api/infrastructure/integrator/firebase/domain"
	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/firebase/firebaseclient"
	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
	"github.com/martonai/revenue-dashboard-api/pkg/utils"
)

// Integrator expõe a base de usuários do produto já resumida. Falha de fonte
// degrada para o resumo zerado.
type Integrator interface {
	UserbaseSummary(ctx context.Context, filters *domain.ReportFilters) *domain.UserbaseSummary
}

type FirebaseIntegrator struct {
	cfg    *config.Config
	client firebaseclient.Client
}

func New(cfg *config.Config, client firebaseclient.Client) *FirebaseIntegrator {
	return &FirebaseIntegrator{
		cfg:    cfg,
		client: client,
	}
}

func (s *FirebaseIntegrator) UserbaseSummary(ctx context.Context, filters *domain.ReportFilters) *domain.UserbaseSummary {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("userbase: failed to fetch users, degrading to empty summary")
		return &domain.UserbaseSummary{}
	}

	projectCount, err := s.client.CountProjects(ctx)
	if err != nil {
		logrus.WithField("error", err.Error()).Warn("userbase: failed to count projects")
		projectCount = 0
	}

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Now().UTC()
	if filters != nil && filters.StartDate != nil && !filters.StartDate.IsZero() {
		start = *filters.StartDate
	}
	if filters != nil && filters.EndDate != nil && !filters.EndDate.IsZero() {
		end = *filters.EndDate
	}

	summary := computeUserbaseSummary(users, projectCount, start, end)

	logrus.WithFields(logrus.Fields{
		"total_userbase":     summary.TotalUserbase,
		"active_subscribers": summary.ActiveSubscribers,
	}).Debug("userbase: summary built")

	return summary
}

// computeUserbaseSummary agrega a base de usuários em memória. A base cabe
// tranquilamente em memória; não há paginação na coleta.
func computeUserbaseSummary(users []firebasedomain.UserRecord, projectCount int, start, end time.Time) *domain.UserbaseSummary {
	summary := &domain.UserbaseSummary{
		TotalUserbase: len(users),
		ProjectCount:  projectCount,
	}

	var payingCount int
	var firstPurchaseDays float64
	var firstPurchaseCount int
	var usagePercentSum float64

	for _, user := range users {
		inRange := utils.WithinWindow(user.CreatedAt, start, end)
		if inRange {
			summary.NewUsersInPeriod++
		}

		if user.IsPaying() {
			payingCount++
		}

		if user.IsSubscribed() {
			summary.ActiveSubscribers++

			limit := user.VideoLimit()
			if limit > 0 {
				usagePercentSum += float64(user.VideosUsedThisMonth) / limit * 100
			}
		}

		if user.FirstPurchaseDate != nil {
			firstPurchaseDays += user.FirstPurchaseDate.Sub(user.CreatedAt).Hours() / 24
			firstPurchaseCount++
		}

		if inRange && user.HasPurchased && !user.HasSubscription {
			summary.SingleBuyersCount++
		}
	}

	summary.PayingUsers = payingCount

	if summary.TotalUserbase > 0 {
		summary.ConversionFreeToSub = utils.RoundWithTwoDecimalPlace(
			float64(summary.ActiveSubscribers) / float64(summary.TotalUserbase) * 100,
		)
		summary.ConversionFreeToPaying = utils.RoundWithTwoDecimalPlace(
			float64(payingCount) / float64(summary.TotalUserbase) * 100,
		)
	}

	if firstPurchaseCount > 0 {
		summary.AvgTimeToFirstPurchase = utils.RoundWithTwoDecimalPlace(firstPurchaseDays / float64(firstPurchaseCount))
	}

	if summary.ActiveSubscribers > 0 {
		summary.AvgUsagePercent = utils.RoundWithTwoDecimalPlace(usagePercentSum / float64(summary.ActiveSubscribers))
	}

	return summary
}
