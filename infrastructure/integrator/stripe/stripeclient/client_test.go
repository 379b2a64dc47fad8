package stripeclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Stripe.BaseURL = server.URL
	cfg.Stripe.PageSize = 2

	return NewClient(cfg, "sk_test_123"), server
}

func TestListChargesPagination(t *testing.T) {
	var requests []string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		requests = append(requests, r.URL.Query().Get("starting_after"))

		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("starting_after") {
		case "":
			fmt.Fprint(w, `{"data":[{"id":"ch_1","amount":1000,"paid":true},{"id":"ch_2","amount":2000,"paid":true}],"has_more":true}`)
		case "ch_2":
			fmt.Fprint(w, `{"data":[{"id":"ch_3","amount":3000,"paid":true,"refunded":true}],"has_more":false}`)
		default:
			t.Fatalf("cursor inesperado: %s", r.URL.Query().Get("starting_after"))
		}
	})

	client, _ := newTestClient(t, handler)

	charges, err := client.ListCharges(context.Background(), time.Now().Add(-time.Hour), time.Now())

	require.NoError(t, err)

	// Cursor estrito: segunda página parte do último id da primeira
	assert.Equal(t, []string{"", "ch_2"}, requests)

	// ch_3 é reembolsada e fica de fora
	require.Len(t, charges, 2)
	assert.Equal(t, "ch_1", charges[0].ID)
	assert.Equal(t, "ch_2", charges[1].ID)
}

func TestListChargesSinglePage(t *testing.T) {
	calls := 0

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[{"id":"ch_1","amount":1000,"paid":true}],"has_more":false}`)
	})

	client, _ := newTestClient(t, handler)

	charges, err := client.ListCharges(context.Background(), time.Now().Add(-time.Hour), time.Now())

	require.NoError(t, err)
	assert.Len(t, charges, 1)

	// Uma coleção de página única requisita exatamente uma página
	assert.Equal(t, 1, calls)
}

func TestListChargesDiscardsPartialResultOnFailure(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("starting_after") == "" {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"data":[{"id":"ch_1","amount":1000,"paid":true},{"id":"ch_2","amount":2000,"paid":true}],"has_more":true}`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	client, _ := newTestClient(t, handler)

	charges, err := client.ListCharges(context.Background(), time.Now().Add(-time.Hour), time.Now())

	assert.Nil(t, charges)
	assert.ErrorIs(t, err, domain.ErrDataSource)
}

func TestListCanceledSubscriptionsStopsEarly(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	inWindow := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Unix()
	beforeWindow := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC).Unix()

	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")

		// Página mais recente primeiro; o segundo registro já precede a
		// janela, então a paginação deve parar aqui.
		fmt.Fprintf(w, `{"data":[{"id":"sub_1","status":"canceled","canceled_at":%d},{"id":"sub_2","status":"canceled","canceled_at":%d}],"has_more":true}`, inWindow, beforeWindow)
	})

	client, _ := newTestClient(t, handler)

	subscriptions, err := client.ListCanceledSubscriptions(context.Background(), start, end)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// Só o cancelamento dentro da janela sobrevive ao filtro
	require.Len(t, subscriptions, 1)
	assert.Equal(t, "sub_1", subscriptions[0].ID)
}

func TestGetSubscription(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscriptions/sub_1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"sub_1","status":"active","items":{"data":[{"price":{"unit_amount":5950,"recurring":{"interval":"month"}}}]}}`)
	})

	client, _ := newTestClient(t, handler)

	subscription, err := client.GetSubscription(context.Background(), "sub_1")

	require.NoError(t, err)
	assert.Equal(t, "month", subscription.Interval())
	assert.Equal(t, int64(5950), subscription.UnitAmount())
}
