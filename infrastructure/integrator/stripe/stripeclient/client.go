package stripeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	stripedomain "github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe/domain"
	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

// Client é a interface de acesso a uma conta de billing: operações de
// listagem com cursor e retrieve por id.
type Client interface {
	ListCharges(ctx context.Context, start, end time.Time) ([]stripedomain.Charge, error)
	ListCheckoutSessions(ctx context.Context, start, end time.Time) ([]stripedomain.CheckoutSession, error)
	ListSubscriptions(ctx context.Context, status string) ([]stripedomain.Subscription, error)
	ListCanceledSubscriptions(ctx context.Context, start, end time.Time) ([]stripedomain.Subscription, error)
	ListInvoices(ctx context.Context, start, end time.Time) ([]stripedomain.Invoice, error)
	ListCustomers(ctx context.Context) ([]stripedomain.Customer, error)
	ListCustomerCharges(ctx context.Context, customerID string) ([]stripedomain.Charge, error)
	GetSubscription(ctx context.Context, id string) (*stripedomain.Subscription, error)
	GetInvoice(ctx context.Context, id string) (*stripedomain.Invoice, error)
	GetCustomer(ctx context.Context, id string) (*stripedomain.Customer, error)
}

type StripeClient struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	pageSize   int
}

// NewClient cria um cliente para uma conta de billing. Cada conta (SaaS e
// Agency) recebe sua própria instância com a chave correspondente.
func NewClient(cfg *config.Config, secretKey string) Client {
	pageSize := cfg.Stripe.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	return &StripeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   cfg.Stripe.BaseURL,
		secretKey: secretKey,
		pageSize:  pageSize,
	}
}

// doGet executa uma requisição GET autenticada e decodifica a resposta.
// Qualquer falha vira domain.ErrDataSource para o chamador decidir o degrade.
func (c *StripeClient) doGet(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, path)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrapf(domain.ErrDataSource, "erro ao criar a requisição para %s: %v", path, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(domain.ErrDataSource, "erro ao executar a requisição para %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(domain.ErrDataSource, "requisição para %s falhou com status %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(domain.ErrDataSource, "erro ao decodificar a resposta de %s: %v", path, err)
	}

	return nil
}

func createdWindow(start, end time.Time) url.Values {
	params := url.Values{}
	params.Set("created[gte]", fmt.Sprintf("%d", start.Unix()))
	params.Set("created[lte]", fmt.Sprintf("%d", end.Unix()))
	return params
}
