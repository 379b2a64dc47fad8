package revenue

// MapResolver é um IntervalResolver sobre lookups pré-carregados em memória.
// Os adapters preenchem os mapas com as assinaturas e faturas referenciadas
// pelos pagamentos da janela antes de classificar.
type MapResolver struct {
	// Intervals mapeia id de assinatura -> intervalo (month/year).
	Intervals map[string]string
	// InvoiceSubscriptions mapeia id de fatura -> id de assinatura.
	InvoiceSubscriptions map[string]string
}

// NewMapResolver cria um resolver vazio pronto para receber lookups.
func NewMapResolver() *MapResolver {
	return &MapResolver{
		Intervals:            map[string]string{},
		InvoiceSubscriptions: map[string]string{},
	}
}

func (r *MapResolver) SubscriptionInterval(id string) (string, bool) {
	interval, ok := r.Intervals[id]
	return interval, ok
}

func (r *MapResolver) InvoiceSubscription(id string) (string, bool) {
	subscriptionID, ok := r.InvoiceSubscriptions[id]
	return subscriptionID, ok
}
