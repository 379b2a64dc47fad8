package sheetsclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

// Client baixa o export CSV da planilha de deals manuais.
type Client interface {
	FetchCSV(ctx context.Context) ([]byte, error)
}

type SheetsClient struct {
	httpClient *http.Client
	exportURL  string
}

func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		exportURL: cfg.Sheets.ExportURL,
	}
}

func (c *SheetsClient) FetchCSV(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.exportURL, nil)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrDataSource, "erro ao criar a requisição da planilha: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrDataSource, "erro ao baixar a planilha: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(domain.ErrDataSource, "download da planilha falhou com status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrDataSource, "erro ao ler o corpo da planilha: %v", err)
	}

	return body, nil
}
