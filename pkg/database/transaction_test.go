package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	beginErr error
}

func (f *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

func TestWithTransactionCommits(t *testing.T) {
	db := &fakeBeginner{tx: &fakeTx{}}

	err := WithTransaction(context.Background(), db, func(pgx.Tx) error { return nil })

	require.NoError(t, err)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db := &fakeBeginner{tx: &fakeTx{}}
	fnErr := errors.New("insert failed")

	err := WithTransaction(context.Background(), db, func(pgx.Tx) error { return fnErr })

	assert.ErrorIs(t, err, fnErr)
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestWithTransactionRollsBackOnCommitError(t *testing.T) {
	db := &fakeBeginner{tx: &fakeTx{commitErr: errors.New("serialization failure")}}

	err := WithTransaction(context.Background(), db, func(pgx.Tx) error { return nil })

	assert.ErrorContains(t, err, "failed to commit transaction")
	assert.True(t, db.tx.rolledBack)
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	db := &fakeBeginner{tx: &fakeTx{}}

	assert.PanicsWithValue(t, "boom", func() {
		_ = WithTransaction(context.Background(), db, func(pgx.Tx) error { panic("boom") })
	})
	assert.True(t, db.tx.rolledBack)
}

func TestWithTransactionBeginError(t *testing.T) {
	db := &fakeBeginner{beginErr: errors.New("pool closed")}

	err := WithTransaction(context.Background(), db, func(pgx.Tx) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorContains(t, err, "failed to begin transaction")
}

func TestWithTransactionResult(t *testing.T) {
	db := &fakeBeginner{tx: &fakeTx{}}

	n, err := WithTransactionResult(context.Background(), db, func(pgx.Tx) (int, error) { return 6, nil })
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	db = &fakeBeginner{tx: &fakeTx{}}
	n, err = WithTransactionResult(context.Background(), db, func(pgx.Tx) (int, error) { return 3, errors.New("x") })
	assert.Error(t, err)
	assert.Zero(t, n)
}
