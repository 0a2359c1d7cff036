package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/couples_finance_bff/internal/apperrors"
	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	portsrepo "github.com/SscSPs/couples_finance_bff/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/couples_finance_bff/internal/core/ports/services"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
	"github.com/google/uuid"
)

type mirrorSyncService struct {
	BaseService
	source   portsrepo.TransactionReader
	mirror   portsrepo.TransactionWriter
	viewerID string
	pageSize int
	maxPages int
}

// NewMirrorSyncService creates a service copying every record of source into mirror.
// Rows are stored for viewerID, the user whose visibility the source credentials carry.
func NewMirrorSyncService(source portsrepo.TransactionReader, mirror portsrepo.TransactionWriter, viewerID string, pageSize, maxPages int) portssvc.MirrorSyncSvc {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &mirrorSyncService{source: source, mirror: mirror, viewerID: viewerID, pageSize: pageSize, maxPages: maxPages}
}

var _ portssvc.MirrorSyncSvc = (*mirrorSyncService)(nil)

// SyncTransactions upserts the source history page by page and returns the number of rows written.
// Pages written before a failure stay in the mirror; rerunning the sync is idempotent.
func (s *mirrorSyncService) SyncTransactions(ctx context.Context) (int, error) {
	if s.viewerID == "" {
		return 0, apperrors.NewAppError(400, "mirror viewer id is required", apperrors.ErrValidation)
	}

	runID := uuid.NewString()
	ctx = middleware.WithLogger(ctx, s.GetLogger(ctx).With(
		slog.String("sync_run_id", runID),
		slog.String("viewer_id", s.viewerID)))
	started := time.Now()

	s.LogInfo(ctx, "Mirror sync started", slog.Int("page_size", s.pageSize))

	written := 0
	err := walkPages(ctx, s.source, domain.TransactionFilter{}, s.pageSize, s.maxPages, func(page []domain.Transaction) error {
		n, err := s.mirror.UpsertTransactions(ctx, s.viewerID, page)
		if err != nil {
			return err
		}
		written += n
		s.LogDebug(ctx, "Mirror page written", slog.Int("rows", n))
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Mirror sync failed", slog.Int("rows_written", written))
		return written, fmt.Errorf("mirror sync failed after %d rows: %w", written, err)
	}

	s.LogInfo(ctx, "Mirror sync finished",
		slog.Int("rows_written", written),
		slog.Duration("elapsed", time.Since(started)))
	return written, nil
}
