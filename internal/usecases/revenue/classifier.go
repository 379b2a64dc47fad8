package revenue

import (
	"strings"

	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

// IntervalResolver resolve referências de assinatura e fatura a partir dos
// lookups pré-carregados pelo adapter. O segundo retorno sinaliza
// explicitamente um lookup não resolvido, consumido pelas regras de fallback
// do classificador.
type IntervalResolver interface {
	// SubscriptionInterval retorna o intervalo (month/year) da assinatura.
	SubscriptionInterval(id string) (string, bool)
	// InvoiceSubscription retorna o id da assinatura vinculada à fatura.
	InvoiceSubscription(id string) (string, bool)
}

// SessionIndex indexa sessões de checkout pelo payment intent do pagamento.
type SessionIndex map[string]domain.CheckoutSession

// BuildSessionIndex monta o índice de sessões da janela consultada.
func BuildSessionIndex(sessions []domain.CheckoutSession) SessionIndex {
	index := make(SessionIndex, len(sessions))
	for _, session := range sessions {
		if session.PaymentIntentID != "" {
			index[session.PaymentIntentID] = session
		}
	}
	return index
}

// Palavras-chave de compra avulsa na descrição livre do pagamento (inclui o
// termo alemão para compra individual).
var singleKeywords = []string{"credit", "one-off", "einzel"}

// Classify atribui exatamente uma categoria a um pagamento. A heurística é
// aproximada, já que nenhum pagamento carrega categoria explícita na fonte, e
// a ordem de precedência abaixo precisa ser preservada para que os agregados
// batam com os totais esperados:
//
//  1. sessão de checkout correspondente (modo payment → single; modo
//     subscription → intervalo da assinatura);
//  2. palavra-chave de compra avulsa na descrição;
//  3. fatura referenciada → assinatura → intervalo;
//  4. default single.
//
// Lookups não resolvidos nunca são fatais: a resolução de intervalo dentro de
// uma sessão de assinatura cai para monthly; qualquer outra falha cai no
// default single.
func Classify(payment domain.Payment, sessions SessionIndex, resolver IntervalResolver) domain.Category {
	if payment.PaymentIntentID != "" {
		if session, ok := sessions[payment.PaymentIntentID]; ok {
			switch session.Mode {
			case domain.SessionModePayment:
				return domain.CategorySingle

			case domain.SessionModeSubscription:
				if session.SubscriptionID != "" {
					interval, resolved := resolver.SubscriptionInterval(session.SubscriptionID)
					if !resolved {
						// Não dá para saber o intervalo; assume mensal
						return domain.CategoryMonthly
					}
					return categoryForInterval(interval)
				}
			}
		}
	}

	description := strings.ToLower(payment.Description)
	for _, keyword := range singleKeywords {
		if strings.Contains(description, keyword) {
			return domain.CategorySingle
		}
	}

	if payment.InvoiceID != "" {
		if subscriptionID, ok := resolver.InvoiceSubscription(payment.InvoiceID); ok && subscriptionID != "" {
			if interval, resolved := resolver.SubscriptionInterval(subscriptionID); resolved {
				return categoryForInterval(interval)
			}
		}
	}

	return domain.CategorySingle
}

func categoryForInterval(interval string) domain.Category {
	if interval == domain.IntervalYear {
		return domain.CategoryYearly
	}
	return domain.CategoryMonthly
}

// ClassifyAll classifica os pagamentos da janela e junta os valores bruto e
// líquido já convertidos para euros.
func ClassifyAll(payments []domain.Payment, sessions SessionIndex, resolver IntervalResolver) []domain.ClassifiedPayment {
	classified := make([]domain.ClassifiedPayment, 0, len(payments))
	for _, payment := range payments {
		classified = append(classified, domain.ClassifiedPayment{
			Payment:     payment,
			Category:    Classify(payment, sessions, resolver),
			GrossAmount: CentsToEuros(payment.Amount),
			NetAmount:   NetFromCents(payment.Amount),
			Date:        payment.CreatedAt,
		})
	}
	return classified
}
