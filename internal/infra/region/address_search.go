package region

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"solarad/config"
	"solarad/internal/domain/service"
	"solarad/internal/errors"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
)

// addressSearcher implements service.AddressSearcher against a hosted Thai
// address-search API. Responses are passed through untouched.
type addressSearcher struct {
	client    *resty.Client
	searchURL string
	logger    *slog.Logger
}

// AddressSearcherParams defines the required parameters
type AddressSearcherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewAddressSearcher is the constructor for addressSearcher.
func NewAddressSearcher(params AddressSearcherParams) service.AddressSearcher {
	cfg := params.Config.Region

	client := resty.New().
		SetTimeout(cfg.FetchTimeout)

	return newAddressSearcher(client, cfg.SearchURL, params.Logger)
}

func newAddressSearcher(client *resty.Client, searchURL string, logger *slog.Logger) *addressSearcher {
	return &addressSearcher{
		client:    client,
		searchURL: searchURL,
		logger:    logger,
	}
}

// Search returns the raw matches for the query. A blank query yields an empty
// result without calling the upstream service.
func (s *addressSearcher) Search(ctx context.Context, query string) (json.RawMessage, error) {
	if strings.TrimSpace(query) == "" {
		return json.RawMessage("[]"), nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get(s.searchURL)
	if err != nil {
		return nil, errors.Wrap(err, "address search request failed")
	}
	if resp.IsError() {
		return nil, errors.Errorf("address search failed: status %d", resp.StatusCode())
	}

	body := resp.Body()
	if len(body) == 0 {
		return json.RawMessage("[]"), nil
	}

	return json.RawMessage(body), nil
}
