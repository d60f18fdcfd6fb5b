package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/salonmobile/booking-engine/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer отражает исход обращения к геокодеру в метриках
type Observer interface {
	ObserveGeocode(outcome string)
}

// Исходы обращения к геокодеру
const (
	outcomeResolved = "resolved"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// Options настройки клиента геокодирования
type Options struct {
	BaseURL      string
	Limit        int
	CountryCodes string // фильтр по странам, например "fr"
	Language     string // значение заголовка Accept-Language
	UserAgent    string
}

// Client клиент для обращения к сервису геокодирования адресов.
// Один запрос на обращение, без повторных попыток: ошибка
// возвращается вызывающему коду как есть.
type Client struct {
	opts       Options
	httpClient *http.Client
	obs        Observer
	log        Logger
}

// NewClient создает новый экземпляр клиента геокодирования.
// obs может быть nil, если метрики выключены
func NewClient(opts Options, timeout time.Duration, obs Observer, log Logger) *Client {
	return &Client{
		opts: opts,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		obs: obs,
		log: log,
	}
}

func (c *Client) observe(outcome string) {
	if c.obs != nil {
		c.obs.ObserveGeocode(outcome)
	}
}

// Resolve переводит свободный текст адреса в координаты.
// Берется первый (наиболее релевантный) кандидат из ответа.
func (c *Client) Resolve(ctx context.Context, address string) (*domain.GeoPoint, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("q", address)
	query.Set("addressdetails", "1")
	query.Set("limit", strconv.Itoa(c.opts.Limit))
	if c.opts.CountryCodes != "" {
		query.Set("countrycodes", c.opts.CountryCodes)
	}

	endpoint := fmt.Sprintf("%s/search?%s", c.opts.BaseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	if c.opts.Language != "" {
		req.Header.Set("Accept-Language", c.opts.Language)
	}
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Geocoder request failed for %q: %v", address, err)
		c.observe(outcomeError)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("Geocoder returned status %d for %q", resp.StatusCode, address)
		c.observe(outcomeError)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.observe(outcomeError)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(results) == 0 {
		c.log.Warn("Geocoder found no candidates for %q", address)
		c.observe(outcomeNotFound)
		return nil, ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		c.observe(outcomeError)
		return nil, fmt.Errorf("%w: malformed latitude %q: %v", ErrInvalidResponse, results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		c.observe(outcomeError)
		return nil, fmt.Errorf("%w: malformed longitude %q: %v", ErrInvalidResponse, results[0].Lon, err)
	}

	c.log.Info("Geocoder resolved %q to (%.4f, %.4f)", address, lat, lng)
	c.observe(outcomeResolved)
	return &domain.GeoPoint{Lat: lat, Lng: lng}, nil
}
