package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/couples_finance_bff/internal/apperrors"
	"github.com/SscSPs/couples_finance_bff/internal/core/domain"
	"github.com/SscSPs/couples_finance_bff/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMirrorSync_CopiesEveryPage(t *testing.T) {
	source := new(MockTransactionReader)
	mirror := new(MockTransactionWriter)
	svc := services.NewMirrorSyncService(source, mirror, "user_1", 2, 10)

	page1 := []domain.Transaction{{TransactionID: "t1"}, {TransactionID: "t2"}}
	page2 := []domain.Transaction{{TransactionID: "t3"}}
	source.On("ListTransactions", mock.Anything, domain.TransactionFilter{}, 2, noCursor()).Return(page1, strPtr("p2"), nil).Once()
	source.On("ListTransactions", mock.Anything, domain.TransactionFilter{}, 2, cursorIs("p2")).Return(page2, nil, nil).Once()
	mirror.On("UpsertTransactions", mock.Anything, "user_1", page1).Return(2, nil).Once()
	mirror.On("UpsertTransactions", mock.Anything, "user_1", page2).Return(1, nil).Once()

	written, err := svc.SyncTransactions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, written)
	source.AssertExpectations(t)
	mirror.AssertExpectations(t)
}

func TestMirrorSync_StopsOnWriteError(t *testing.T) {
	source := new(MockTransactionReader)
	mirror := new(MockTransactionWriter)
	svc := services.NewMirrorSyncService(source, mirror, "user_1", 2, 10)

	page1 := []domain.Transaction{{TransactionID: "t1"}}
	source.On("ListTransactions", mock.Anything, mock.Anything, 2, noCursor()).Return(page1, strPtr("p2"), nil).Once()
	mirror.On("UpsertTransactions", mock.Anything, "user_1", page1).Return(0, assert.AnError).Once()

	written, err := svc.SyncTransactions(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, written)
	source.AssertNumberOfCalls(t, "ListTransactions", 1)
}

func TestMirrorSync_SourceErrorKeepsWrittenCount(t *testing.T) {
	source := new(MockTransactionReader)
	mirror := new(MockTransactionWriter)
	svc := services.NewMirrorSyncService(source, mirror, "user_1", 0, 0)

	page1 := []domain.Transaction{{TransactionID: "t1"}}
	source.On("ListTransactions", mock.Anything, mock.Anything, 100, noCursor()).Return(page1, strPtr("p2"), nil).Once()
	source.On("ListTransactions", mock.Anything, mock.Anything, 100, cursorIs("p2")).Return(nil, nil, assert.AnError).Once()
	mirror.On("UpsertTransactions", mock.Anything, "user_1", page1).Return(1, nil).Once()

	written, err := svc.SyncTransactions(context.Background())

	require.Error(t, err)
	assert.Equal(t, 1, written)
}

func TestMirrorSync_RequiresViewer(t *testing.T) {
	source := new(MockTransactionReader)
	mirror := new(MockTransactionWriter)
	svc := services.NewMirrorSyncService(source, mirror, "", 2, 10)

	written, err := svc.SyncTransactions(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Zero(t, written)
	source.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
