package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioRepo_RecordPurchase(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPortfolioRepo(mock)
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO portfolio_entries").
		WithArgs(accountID, int64(5)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.RecordPurchase(context.Background(), tx, accountID, 5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioRepo_RecordPurchase_RepeatIsNoop(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPortfolioRepo(mock)
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO portfolio_entries").
		WithArgs(accountID, int64(5)).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.RecordPurchase(context.Background(), tx, accountID, 5)
	assert.NoError(t, err, "conflict on repeat purchase should not error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioRepo_ListByAccount_KeepsSoldOutEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPortfolioRepo(mock)
	accountID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM portfolio_entries").
		WithArgs(accountID).
		WillReturnRows(pgxmock.NewRows([]string{"asset_id", "position", "balance"}).
			AddRow(int64(1), int32(1), int64(300)).
			AddRow(int64(4), int32(2), int64(0)))

	entries, err := repo.ListByAccount(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].AssetID)
	assert.Equal(t, int64(300), entries[0].Balance)
	assert.Equal(t, int64(4), entries[1].AssetID)
	assert.Equal(t, int64(0), entries[1].Balance, "sold-out positions stay listed with zero balance")
	assert.NoError(t, mock.ExpectationsWereMet())
}
