package forecast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"marinecast/internal/models"
	"marinecast/internal/structures"
)

type FetcherInterface interface {
	Fetch(ctx context.Context, zone models.ZoneCode) (string, error)
}

// TextProductFetcher retrieves the raw coastal waters text product for a zone
// from the upstream file server, e.g.
// https://tgftp.nws.noaa.gov/data/forecasts/marine/coastal/pz/pzz135.txt
type TextProductFetcher struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewTextProductFetcher(conf *structures.Config) FetcherInterface {
	return &TextProductFetcher{
		baseURL:   strings.TrimSuffix(conf.Forecast.BaseURL, "/"),
		userAgent: conf.Forecast.UserAgent,
		client: &http.Client{
			Timeout: conf.Forecast.FetchTimeout,
		},
	}
}

func (f *TextProductFetcher) Fetch(ctx context.Context, zone models.ZoneCode) (string, error) {
	url := fmt.Sprintf("%s/%s.txt", f.baseURL, strings.ToLower(zone.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{Zone: zone, Kind: FetchNetwork, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		kind := FetchNetwork
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			kind = FetchTimeout
		}
		return "", &FetchError{Zone: zone, Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{Zone: zone, Kind: FetchHTTP, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{Zone: zone, Kind: FetchNetwork, Err: err}
	}
	return string(body), nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
