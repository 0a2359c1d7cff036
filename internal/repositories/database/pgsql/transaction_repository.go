package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/SscSPs/couples_finance_bff/internal/apperrors"
	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	portsrepo "github.com/SscSPs/couples_finance_bff/internal/core/ports/repositories"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
	"github.com/SscSPs/couples_finance_bff/internal/models"
	"github.com/SscSPs/couples_finance_bff/internal/utils/mapping"
	"github.com/SscSPs/couples_finance_bff/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPageSize = 20

const transactionColumns = `transaction_id, account_id, payer_id, transaction_type, amount,
		category_code, category_label, description, transaction_date,
		installment_group_id, installment_number, total_installments, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a repository over the transactions mirror table.
func NewPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// ListTransactions retrieves a page of mirrored transactions using token-based pagination.
// Only rows synced for the caller in ctx are visible.
// Rows are ordered newest first by transaction date, then creation time, then id.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	viewerID, ok := middleware.GetUserIDFromCtx(ctx)
	if !ok {
		return nil, nil, apperrors.NewAppError(401, "mirror reads require an authenticated caller", apperrors.ErrUnauthorized)
	}

	if limit <= 0 {
		limit = defaultPageSize
	}

	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		decoded, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		cursor = &decoded
	}

	// One extra row tells us whether another page exists.
	query, args := buildListQuery(viewerID, filter, cursor, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, limit+1)
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(
			&t.TransactionID,
			&t.AccountID,
			&t.PayerID,
			&t.TransactionType,
			&t.Amount,
			&t.CategoryCode,
			&t.CategoryLabel,
			&t.Description,
			&t.TransactionDate,
			&t.InstallmentGroupID,
			&t.InstallmentNumber,
			&t.TotalInstallments,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		results = results[:limit]
		last := results[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			TransactionDate: last.TransactionDate,
			CreatedAt:       last.CreatedAt,
			TransactionID:   last.TransactionID,
		})
		nextTokenVal = &token
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// UpsertTransactions writes the given transactions for viewerID in a single database transaction,
// replacing rows that already exist for that viewer.
func (r *PgxTransactionRepository) UpsertTransactions(ctx context.Context, viewerID string, txns []domain.Transaction) (int, error) {
	if viewerID == "" {
		return 0, apperrors.NewAppError(400, "mirror viewer id is required", apperrors.ErrValidation)
	}
	if len(txns) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, txn := range txns {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(upsertQuery,
			viewerID,
			m.TransactionID,
			m.AccountID,
			m.PayerID,
			m.TransactionType,
			m.Amount,
			m.CategoryCode,
			m.CategoryLabel,
			m.Description,
			m.TransactionDate,
			m.InstallmentGroupID,
			m.InstallmentNumber,
			m.TotalInstallments,
			m.CreatedAt,
		)
	}

	err := r.withTx(ctx, "upsert", func(tx pgx.Tx) error {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return apperrors.NewAppError(500, "failed to execute transaction upsert batch", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(txns), nil
}

const upsertQuery = `
	INSERT INTO transactions (viewer_id, ` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (viewer_id, transaction_id) DO UPDATE SET
		account_id = EXCLUDED.account_id,
		payer_id = EXCLUDED.payer_id,
		transaction_type = EXCLUDED.transaction_type,
		amount = EXCLUDED.amount,
		category_code = EXCLUDED.category_code,
		category_label = EXCLUDED.category_label,
		description = EXCLUDED.description,
		transaction_date = EXCLUDED.transaction_date,
		installment_group_id = EXCLUDED.installment_group_id,
		installment_number = EXCLUDED.installment_number,
		total_installments = EXCLUDED.total_installments,
		created_at = EXCLUDED.created_at,
		synced_at = NOW();
`

// buildListQuery assembles the filtered keyset query scoped to viewerID.
// viewerID is always the first argument and fetchLimit the last.
func buildListQuery(viewerID string, filter domain.TransactionFilter, cursor *pagination.Cursor, fetchLimit int) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)
	placeholder := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	conditions = append(conditions, "viewer_id = "+placeholder(viewerID))
	if filter.AccountID != "" {
		conditions = append(conditions, "account_id = "+placeholder(filter.AccountID))
	}
	if filter.TransactionType != "" {
		conditions = append(conditions, "transaction_type = "+placeholder(string(filter.TransactionType)))
	}
	if cursor != nil {
		// Tuple comparison matches the ORDER BY below.
		conditions = append(conditions, "(transaction_date, created_at, transaction_id) < ("+
			placeholder(cursor.TransactionDate)+", "+
			placeholder(cursor.CreatedAt)+", "+
			placeholder(cursor.TransactionID)+")")
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(transactionColumns)
	sb.WriteString(" FROM transactions WHERE ")
	sb.WriteString(strings.Join(conditions, " AND "))
	sb.WriteString(" ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC")
	sb.WriteString(" LIMIT " + placeholder(fetchLimit) + ";")

	return sb.String(), args
}
