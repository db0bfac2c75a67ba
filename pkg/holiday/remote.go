package holiday

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// YearCache persists fetched holiday years so the remote API is consulted at
// most once per year per deployment. A nil cache disables caching.
type YearCache interface {
	GetYear(year int) (map[string]string, bool)
	PutYear(year int, holidays map[string]string) error
}

// RemoteSource fetches public holidays from the date.nager.at API. It exists
// as an optional override for deployments that prefer the published official
// set over the local computation; the core never requires it.
type RemoteSource struct {
	baseURL     string
	countryCode string
	client      *fasthttp.Client
	cache       YearCache
	logger      *zap.Logger
}

func NewRemoteSource(countryCode string, cache YearCache, logger *zap.Logger) *RemoteSource {
	if countryCode == "" {
		countryCode = "PH"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteSource{
		baseURL:     "https://date.nager.at/api/v3/PublicHolidays",
		countryCode: countryCode,
		client: &fasthttp.Client{
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		cache:  cache,
		logger: logger,
	}
}

type nagerHoliday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (s *RemoteSource) HolidaysForYear(year int) (map[string]string, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetYear(year); ok {
			return cached, nil
		}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/%d/%s", s.baseURL, year, s.countryCode))
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := s.client.Do(req, resp); err != nil {
		return nil, err
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("holiday api returned status %d", resp.StatusCode())
	}

	var entries []nagerHoliday
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, err
	}

	holidays := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Date == "" {
			continue
		}
		name := e.Name
		if name == "" {
			name = "Holiday"
		}
		holidays[e.Date] = name
	}

	if s.cache != nil {
		if err := s.cache.PutYear(year, holidays); err != nil {
			s.logger.Warn("failed to cache holiday year", zap.Int("year", year), zap.Error(err))
		}
	}
	return holidays, nil
}
