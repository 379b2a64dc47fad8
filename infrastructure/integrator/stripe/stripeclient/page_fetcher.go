package stripeclient

import (
	"context"
	"net/url"
	"strconv"
)

// record é qualquer registro paginável da API de billing.
type record interface {
	RecordID() string
}

type page[T record] struct {
	Data    []T  `json:"data"`
	HasMore bool `json:"has_more"`
}

// fetchAllPages acumula todas as páginas de uma coleção. O cursor
// (starting_after) é sempre derivado do último registro da página anterior:
// as páginas são requisitadas estritamente em ordem de cursor, sem prefetch.
//
// stopEarly, quando definido, é avaliado sobre a página recém-recebida: em
// coleções ordenadas da mais nova para a mais antiga ele permite interromper
// a paginação assim que os registros já precedem a janela consultada. É uma
// otimização; omiti-la produz o mesmo resultado, só que mais devagar.
func fetchAllPages[T record](ctx context.Context, c *StripeClient, path string, params url.Values, stopEarly func(pageData []T) bool) ([]T, error) {
	all := make([]T, 0)
	startingAfter := ""

	for {
		query := url.Values{}
		for key, values := range params {
			query[key] = values
		}
		query.Set("limit", strconv.Itoa(c.pageSize))
		if startingAfter != "" {
			query.Set("starting_after", startingAfter)
		}

		var currentPage page[T]
		if err := c.doGet(ctx, path, query, &currentPage); err != nil {
			// Falha em qualquer página aborta a operação inteira; o
			// acumulado parcial é descartado.
			return nil, err
		}

		all = append(all, currentPage.Data...)

		if !currentPage.HasMore || len(currentPage.Data) == 0 {
			break
		}

		startingAfter = currentPage.Data[len(currentPage.Data)-1].RecordID()

		if stopEarly != nil && stopEarly(currentPage.Data) {
			break
		}
	}

	return all, nil
}
