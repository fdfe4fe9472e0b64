package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-medi-vault/internal/config"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/utils"
	"github.com/MKhiriev/go-medi-vault/internal/validators"
	"github.com/MKhiriev/go-medi-vault/models"
)

const (
	pathRegister  = "/api/auth/register"
	pathLogin     = "/api/auth/login"
	pathRecords   = "/api/records"
	pathVitals    = "/api/vitals"
	pathReminders = "/api/reminders"
)

type httpRemoteStore struct {
	client    *utils.HTTPClient
	validator validators.Validator

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Every entity received from the backend is decoded strictly (unknown fields
// are rejected) and checked with validator before it is returned.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, validator validators.Validator, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpRemoteStore{client: client, validator: validator, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [RemoteStore]. It POSTs the credentials to
// POST /api/auth/register and returns the session from the response body.
func (h *httpRemoteStore) Register(ctx context.Context, creds models.Credentials) (models.AccountSession, error) {
	return h.authenticate(ctx, pathRegister, creds)
}

// Login implements [RemoteStore]. It POSTs the credentials to
// POST /api/auth/login and returns the session from the response body.
func (h *httpRemoteStore) Login(ctx context.Context, creds models.Credentials) (models.AccountSession, error) {
	return h.authenticate(ctx, pathLogin, creds)
}

func (h *httpRemoteStore) authenticate(ctx context.Context, path string, creds models.Credentials) (models.AccountSession, error) {
	if err := h.validator.Validate(ctx, creds); err != nil {
		return models.AccountSession{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		return models.AccountSession{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountSession{}, err
	}

	var session models.AccountSession
	if err = decode(resp, &session); err != nil {
		return models.AccountSession{}, err
	}

	// the Authorization header is authoritative when the backend sends one
	if header := resp.Header().Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return models.AccountSession{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		session.Token = token
	}
	if !session.Authenticated() || session.UserID == 0 {
		return models.AccountSession{}, fmt.Errorf("%w: missing session fields", ErrMalformedResponse)
	}

	return session, nil
}

// ListRecords implements [RemoteStore] with GET /api/records.
func (h *httpRemoteStore) ListRecords(ctx context.Context, token string) ([]models.RemoteRecord, error) {
	return list(ctx, h, token, pathRecords, func(r models.RemoteRecord) (models.ServerFields, any) {
		return r.ServerFields, r.Stripped()
	})
}

// CreateRecord implements [RemoteStore] with POST /api/records. The
// encrypted payload is sent exactly as stored locally.
func (h *httpRemoteStore) CreateRecord(ctx context.Context, token string, rec models.Record) (models.RemoteRecord, error) {
	return create(ctx, h, token, pathRecords, rec, func(r models.RemoteRecord) (models.ServerFields, any) {
		return r.ServerFields, r.Stripped()
	})
}

// DeleteRecord implements [RemoteStore] with DELETE /api/records/{id}.
func (h *httpRemoteStore) DeleteRecord(ctx context.Context, token string, id string) error {
	req, err := h.authedRequest(ctx, token)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", id).
		Delete(pathRecords + "/{id}")
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListVitals implements [RemoteStore] with GET /api/vitals.
func (h *httpRemoteStore) ListVitals(ctx context.Context, token string) ([]models.RemoteVital, error) {
	return list(ctx, h, token, pathVitals, func(v models.RemoteVital) (models.ServerFields, any) {
		return v.ServerFields, v.Stripped()
	})
}

// CreateVital implements [RemoteStore] with POST /api/vitals.
func (h *httpRemoteStore) CreateVital(ctx context.Context, token string, vital models.Vital) (models.RemoteVital, error) {
	return create(ctx, h, token, pathVitals, vital, func(v models.RemoteVital) (models.ServerFields, any) {
		return v.ServerFields, v.Stripped()
	})
}

// ListReminders implements [RemoteStore] with GET /api/reminders.
func (h *httpRemoteStore) ListReminders(ctx context.Context, token string) ([]models.RemoteReminder, error) {
	return list(ctx, h, token, pathReminders, func(r models.RemoteReminder) (models.ServerFields, any) {
		return r.ServerFields, r.Stripped()
	})
}

// CreateReminder implements [RemoteStore] with POST /api/reminders.
func (h *httpRemoteStore) CreateReminder(ctx context.Context, token string, reminder models.Reminder) (models.RemoteReminder, error) {
	return create(ctx, h, token, pathReminders, reminder, func(r models.RemoteReminder) (models.ServerFields, any) {
		return r.ServerFields, r.Stripped()
	})
}

func list[T any](ctx context.Context, h *httpRemoteStore, token, path string, split func(T) (models.ServerFields, any)) ([]T, error) {
	req, err := h.authedRequest(ctx, token)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []T
	if err = decode(resp, &items); err != nil {
		return nil, err
	}

	for i, item := range items {
		fields, entity := split(item)
		if err = h.validateRemote(ctx, fields, entity); err != nil {
			h.logger.Warn().Str("func", "list").Str("path", path).Int("index", i).Err(err).Msg("rejected remote entity")
			return nil, fmt.Errorf("%w: item %d: %w", ErrMalformedResponse, i, err)
		}
	}

	return items, nil
}

func create[T any](ctx context.Context, h *httpRemoteStore, token, path string, entity any, split func(T) (models.ServerFields, any)) (T, error) {
	var created T

	req, err := h.authedRequest(ctx, token)
	if err != nil {
		return created, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(entity).
		Post(path)
	if err != nil {
		return created, fmt.Errorf("create %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return created, err
	}

	if err = decode(resp, &created); err != nil {
		return created, err
	}
	fields, local := split(created)
	if err = h.validateRemote(ctx, fields, local); err != nil {
		return created, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return created, nil
}

func (h *httpRemoteStore) validateRemote(ctx context.Context, fields models.ServerFields, entity any) error {
	if fields.ServerID == "" {
		return errors.New("empty server id")
	}
	return h.validator.Validate(ctx, entity)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context, token string) (*resty.Request, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func decode(resp *resty.Response, dst any) error {
	if err := utils.DecodeStrictJSON(bytes.NewReader(resp.Body()), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
