package data

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/apalladino/pac-sim/pkg/types"
)

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// YahooProvider fetches daily closing prices from the Yahoo Finance chart API.
type YahooProvider struct {
	client *http.Client
}

// NewYahooProvider creates a Yahoo Finance provider with a sane timeout.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the name of the provider.
func (p *YahooProvider) Name() string {
	return "Yahoo Finance"
}

type yahooChartResp struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// Fetch retrieves daily closes for a ticker from since to now. Days with a
// missing or zero close (halts, partial data) are skipped.
func (p *YahooProvider) Fetch(assetID string, since time.Time) (*types.PriceSeries, error) {
	u := yahooChartURL + url.PathEscape(assetID) +
		fmt.Sprintf("?period1=%d&period2=%d&interval=1d", since.Unix(), time.Now().Unix())

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "curl/8")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s from yahoo: %w", assetID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s from yahoo: status %s", assetID, resp.Status)
	}

	var yc yahooChartResp
	if err := json.NewDecoder(resp.Body).Decode(&yc); err != nil {
		return nil, fmt.Errorf("decode yahoo response for %s: %w", assetID, err)
	}
	if len(yc.Chart.Result) == 0 || len(yc.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no data returned for %s", assetID)
	}

	ts := yc.Chart.Result[0].Timestamp
	closes := yc.Chart.Result[0].Indicators.Quote[0].Close

	series := &types.PriceSeries{Asset: assetID}
	for i := range ts {
		if i >= len(closes) || closes[i] <= 0 {
			continue
		}
		series.Points = append(series.Points, types.PricePoint{
			Date:  time.Unix(ts[i], 0).UTC().Truncate(24 * time.Hour),
			Close: closes[i],
		})
	}

	if err := ValidateSeries(series); err != nil {
		return nil, fmt.Errorf("yahoo series for %s: %w", assetID, err)
	}

	return series, nil
}
