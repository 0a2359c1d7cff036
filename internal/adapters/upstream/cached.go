package upstream

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	portsrepo "github.com/SscSPs/couples_finance_bff/internal/core/ports/repositories"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// transactionPage is one cached ListTransactions result.
type transactionPage struct {
	txns []domain.Transaction
	next *string
}

// CachedTransactionReader wraps a TransactionReader with a short-lived per-caller page cache.
// Concurrent identical requests share a single upstream call.
type CachedTransactionReader struct {
	next  portsrepo.TransactionReader
	cache *expirable.LRU[string, transactionPage]
	group singleflight.Group
}

// NewCachedTransactionReader creates the decorator. A non-positive ttl disables caching
// but keeps request coalescing.
func NewCachedTransactionReader(next portsrepo.TransactionReader, size int, ttl time.Duration) *CachedTransactionReader {
	if size <= 0 {
		size = 1
	}
	r := &CachedTransactionReader{next: next}
	if ttl > 0 {
		r.cache = expirable.NewLRU[string, transactionPage](size, nil, ttl)
	}
	return r
}

var _ portsrepo.TransactionReader = (*CachedTransactionReader)(nil)

// ListTransactions serves a page from cache or fetches it through the wrapped reader.
// Results are copied so callers cannot mutate cached pages.
func (r *CachedTransactionReader) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	key := cacheKey(ctx, filter, limit, nextToken)

	if r.cache != nil {
		if page, ok := r.cache.Get(key); ok {
			middleware.GetLoggerFromCtx(ctx).Debug("Transaction page served from cache", slog.String("filter", filter.CacheKey()))
			return clonePage(page)
		}
	}

	// The shared fetch outlives any single caller; each caller still stops waiting on its own cancellation.
	fetchCtx := context.WithoutCancel(ctx)
	ch := r.group.DoChan(key, func() (interface{}, error) {
		txns, next, err := r.next.ListTransactions(fetchCtx, filter, limit, nextToken)
		if err != nil {
			return nil, err
		}
		page := transactionPage{txns: txns, next: next}
		if r.cache != nil {
			r.cache.Add(key, page)
		}
		return page, nil
	})

	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, nil, res.Err
		}
		if res.Shared {
			middleware.GetLoggerFromCtx(ctx).Debug("Transaction page fetch shared with concurrent request")
		}
		return clonePage(res.Val.(transactionPage))
	}
}

// Purge drops every cached page.
func (r *CachedTransactionReader) Purge() {
	if r.cache != nil {
		r.cache.Purge()
	}
}

// cacheKey scopes entries to the caller so partners never see each other's cached views.
func cacheKey(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) string {
	caller, _ := middleware.GetUserIDFromCtx(ctx)
	cursor := ""
	if nextToken != nil {
		cursor = *nextToken
	}
	return fmt.Sprintf("%s|%s|limit=%d|cursor=%s", caller, filter.CacheKey(), limit, cursor)
}

func clonePage(page transactionPage) ([]domain.Transaction, *string, error) {
	txns := make([]domain.Transaction, len(page.txns))
	copy(txns, page.txns)
	var next *string
	if page.next != nil {
		n := *page.next
		next = &n
	}
	return txns, next, nil
}
