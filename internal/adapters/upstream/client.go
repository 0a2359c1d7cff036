// Package upstream talks to the remote finance REST API.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/SscSPs/couples_finance_bff/internal/apperrors"
	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	portsrepo "github.com/SscSPs/couples_finance_bff/internal/core/ports/repositories"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 4 << 10

// Client is a read-only client for the finance API.
// Requests carry the caller's bearer token when present in the context, otherwise the service token.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	serviceToken string
	validate     *validator.Validate
}

// ClientConfig configures a Client.
type ClientConfig struct {
	BaseURL      string
	ServiceToken string
	Timeout      time.Duration
	HTTPClient   *http.Client // Optional; a client with Timeout is created when nil
}

// NewClient creates a new finance API client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		httpClient:   httpClient,
		serviceToken: cfg.ServiceToken,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

var (
	_ portsrepo.TransactionReader = (*Client)(nil)
	_ portsrepo.AccountReader     = (*Client)(nil)
)

// ListTransactions fetches one page of transactions. Records that fail validation are skipped.
func (c *Client) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if nextToken != nil && *nextToken != "" {
		query.Set("cursor", *nextToken)
	}
	if filter.AccountID != "" {
		query.Set("account_id", filter.AccountID)
	}
	if filter.TransactionType != "" {
		query.Set("type", string(filter.TransactionType))
	}

	var envelope transactionsEnvelope
	if err := c.get(ctx, "/transactions", query, &envelope); err != nil {
		return nil, nil, err
	}

	txns := make([]domain.Transaction, 0, len(envelope.Transactions))
	for i, raw := range envelope.Transactions {
		var payload transactionPayload
		if err := c.decodeRecord(raw, &payload); err != nil {
			logger.Warn("Skipping invalid transaction record from upstream",
				slog.Int("index", i),
				slog.String("transaction_id", payload.ID),
				slog.String("error", err.Error()))
			continue
		}
		txn, dateOK := payload.toDomain()
		if !dateOK {
			logger.Debug("Transaction date could not be parsed", slog.String("transaction_id", payload.ID), slog.String("raw_date", payload.TransactionDate))
		}
		txns = append(txns, txn)
	}

	next := envelope.NextCursor
	if next != nil && *next == "" {
		next = nil
	}
	return txns, next, nil
}

// ListAccounts fetches the accounts visible to the caller.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var envelope accountsEnvelope
	if err := c.get(ctx, "/accounts", nil, &envelope); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(envelope.Accounts))
	for i, raw := range envelope.Accounts {
		var payload accountPayload
		if err := c.decodeRecord(raw, &payload); err != nil {
			logger.Warn("Skipping invalid account record from upstream", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		accounts = append(accounts, payload.toDomain())
	}
	return accounts, nil
}

// decodeRecord unmarshals a single record and validates it.
func (c *Client) decodeRecord(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return err
	}
	return c.validate.Struct(out)
}

// tokenFor picks the credential for a request.
func (c *Client) tokenFor(ctx context.Context) *oauth2.Token {
	if token, ok := middleware.GetBearerTokenFromCtx(ctx); ok {
		return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}
	}
	if c.serviceToken != "" {
		return &oauth2.Token{AccessToken: c.serviceToken, TokenType: "Bearer"}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to build upstream request", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.tokenFor(ctx); token != nil {
		token.SetAuthHeader(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewAppError(http.StatusBadGateway, "upstream request to "+path+" failed", errors.Join(apperrors.ErrUpstream, err))
	}
	defer resp.Body.Close()

	middleware.GetLoggerFromCtx(ctx).Debug("Upstream request completed",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewAppError(http.StatusBadGateway, "failed to decode upstream response from "+path, errors.Join(apperrors.ErrUpstream, err))
	}
	return nil
}

// statusError maps a non-2xx upstream response onto the application error taxonomy.
func statusError(path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := fmt.Sprintf("upstream %s returned status %d", path, resp.StatusCode)
	var envelope errorEnvelope
	if json.Unmarshal(body, &envelope) == nil {
		if envelope.Message != "" {
			message += ": " + envelope.Message
		} else if envelope.Error != "" {
			message += ": " + envelope.Error
		}
	}

	var sentinel error
	code := http.StatusBadGateway
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		sentinel, code = apperrors.ErrUnauthorized, http.StatusUnauthorized
	case http.StatusForbidden:
		sentinel, code = apperrors.ErrForbidden, http.StatusForbidden
	case http.StatusNotFound:
		sentinel, code = apperrors.ErrNotFound, http.StatusNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		sentinel, code = apperrors.ErrValidation, http.StatusBadRequest
	default:
		sentinel = apperrors.ErrUpstream
	}
	return apperrors.NewAppError(code, message, sentinel)
}
