package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-counter-client/internal/config"
	"github.com/MKhiriev/go-counter-client/internal/logger"
	"github.com/MKhiriev/go-counter-client/internal/utils"
	"github.com/MKhiriev/go-counter-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	traceIDHeader = "X-Trace-ID"

	counterPath = "/counter"
	pushPath    = "/ws"
)

type httpCounterAdapter struct {
	client  *utils.HTTPClient
	pushURL string

	logger *logger.Logger
}

// NewHTTPCounterAdapter constructs the HTTP/REST implementation of
// [CounterAdapter]. The base URL is normalised from adapterCfg.HTTPAddress
// and the push-channel URL is derived from it.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed.
func NewHTTPCounterAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (CounterAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpCounterAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		pushURL: utils.PushURL(baseURL, pushPath),
		logger:  log.WithComponent("adapter"),
	}

	a.client.
		OnBeforeRequest(a.withTraceID).
		OnAfterResponse(a.logResponse)

	return a, nil
}

// Get implements [CounterAdapter].
func (h *httpCounterAdapter) Get(ctx context.Context) (models.Counter, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(counterPath)
	if err != nil {
		return models.Counter{}, fmt.Errorf("get counter request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Counter{}, err
	}

	return decodeCounter(resp)
}

// Apply implements [CounterAdapter].
func (h *httpCounterAdapter) Apply(ctx context.Context, action models.Action) (models.Counter, error) {
	if !action.Valid() {
		return models.Counter{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Post(counterPath + "/" + action.String())
	if err != nil {
		return models.Counter{}, fmt.Errorf("%s counter request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Counter{}, err
	}

	return decodeCounter(resp)
}

// PushURL implements [CounterAdapter].
func (h *httpCounterAdapter) PushURL() string {
	return h.pushURL
}

func (h *httpCounterAdapter) withTraceID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(traceIDHeader) == "" {
		r.SetHeader(traceIDHeader, utils.NewTraceID())
	}
	return nil
}

func (h *httpCounterAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("trace_id", resp.Request.Header.Get(traceIDHeader)).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("backend response")
	return nil
}

// counterBody mirrors [models.Counter] with a pointer so an absent or null
// value is rejected instead of read as 0.
type counterBody struct {
	Value *int64 `json:"value"`
}

func decodeCounter(resp *resty.Response) (models.Counter, error) {
	var body counterBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Counter{}, fmt.Errorf("decode counter response: %w", err)
	}
	if body.Value == nil {
		return models.Counter{}, fmt.Errorf("decode counter response: %w", ErrMissingValue)
	}

	return models.Counter{Value: *body.Value}, nil
}
