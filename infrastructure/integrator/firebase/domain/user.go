package domain

import "time"

// UserRecord é o documento de usuário armazenado na coleção "users".
// Os campos de limite de vídeo variam conforme o plano contratado.
type UserRecord struct {
	ID                   string     `firestore:"-"`
	Email                string     `firestore:"email"`
	CreatedAt            time.Time  `firestore:"createdAt"`
	HasSubscription      bool       `firestore:"hasSubscription"`
	HasPurchased         bool       `firestore:"hasPurchased"`
	PurchaseCount        int        `firestore:"purchaseCount"`
	SubscriptionStatus   string     `firestore:"subscriptionStatus"`
	SubscriptionInterval string     `firestore:"subscriptionInterval"`
	FirstPurchaseDate    *time.Time `firestore:"firstPurchaseDate"`
	VideosUsedThisMonth  int        `firestore:"videosUsedThisMonth"`
	MonthlyVideoLimit    int        `firestore:"monthlyVideoLimit"`
	YearlyVideoLimit     int        `firestore:"yearlyVideoLimit"`
}

// IsPaying informa se o usuário já gastou dinheiro no produto.
func (u UserRecord) IsPaying() bool {
	return u.HasSubscription || u.HasPurchased || u.PurchaseCount > 0
}

// IsSubscribed informa se o usuário tem assinatura vigente.
func (u UserRecord) IsSubscribed() bool {
	return u.SubscriptionStatus == "active" || u.SubscriptionStatus == "trialing"
}

// VideoLimit resolve o limite mensal de vídeos do usuário. Planos anuais
// carregam o limite do ano; usuários sem limite registrado ficam no default.
func (u UserRecord) VideoLimit() float64 {
	if u.MonthlyVideoLimit > 0 {
		return float64(u.MonthlyVideoLimit)
	}
	if u.SubscriptionInterval == "year" && u.YearlyVideoLimit > 0 {
		return float64(u.YearlyVideoLimit) / 12
	}
	return 10
}
