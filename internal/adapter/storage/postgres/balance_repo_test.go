package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	accountID := uuid.New()

	mock.ExpectQuery("SELECT balance FROM share_balances").
		WithArgs(int64(1), accountID).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(300)))

	balance, err := repo.Get(context.Background(), 1, accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_Get_MissingRowReadsAsZero(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	accountID := uuid.New()

	mock.ExpectQuery("SELECT balance FROM share_balances").
		WithArgs(int64(9), accountID).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}))

	balance, err := repo.Get(context.Background(), 9, accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT balance FROM share_balances .+ FOR UPDATE").
		WithArgs(int64(1), accountID).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(10_000)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	balance, err := repo.GetForUpdate(context.Background(), tx, 1, accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_Add_ReturnsNewBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO share_balances").
		WithArgs(int64(1), accountID, int64(-300)).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(9_700)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	balance, err := repo.Add(context.Background(), tx, 1, accountID, -300)
	require.NoError(t, err)
	assert.Equal(t, int64(9_700), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_SumByAsset(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(balance\\), 0\\) FROM share_balances").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(10_000)))

	total, err := repo.SumByAsset(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
