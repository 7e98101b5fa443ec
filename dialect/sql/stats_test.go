package sql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillsql/quill/dialect"
)

func TestStatsDriverCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sd := NewStatsDriver(OpenDB(dialect.MySQL, db))

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	require.NoError(t, sd.Exec(context.Background(), "INSERT INTO users DEFAULT VALUES", []any{}, nil))
	rows := &Rows{}
	require.NoError(t, sd.Query(context.Background(), "SELECT 1", []any{}, rows))
	require.NoError(t, rows.Close())

	stats := sd.QueryStats().Stats()
	assert.Equal(t, int64(1), stats.TotalExecs)
	assert.Equal(t, int64(1), stats.TotalQueries)
	assert.Equal(t, int64(0), stats.Errors)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsDriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sd := NewStatsDriver(OpenDB(dialect.MySQL, db))

	mock.ExpectExec("INSERT INTO users").WillReturnError(assert.AnError)
	require.Error(t, sd.Exec(context.Background(), "INSERT INTO users DEFAULT VALUES", []any{}, nil))
	assert.Equal(t, int64(1), sd.QueryStats().Stats().Errors)
}

func TestStatsDriverSlowHook(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var slow []string
	sd := NewStatsDriver(OpenDB(dialect.MySQL, db),
		WithSlowThreshold(0),
		WithSlowQueryHook(func(_ context.Context, query string, _ []any, _ time.Duration) {
			slow = append(slow, query)
		}),
	)

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, sd.Exec(context.Background(), "INSERT INTO users DEFAULT VALUES", []any{}, nil))
	require.Len(t, slow, 1)
	assert.Equal(t, "INSERT INTO users DEFAULT VALUES", slow[0])
	assert.Equal(t, int64(1), sd.QueryStats().Stats().SlowQueries)
}

func TestStatsSnapshotString(t *testing.T) {
	t.Parallel()
	s := StatsSnapshot{TotalQueries: 2, TotalExecs: 2, TotalDuration: 4 * time.Second, SlowQueries: 1}
	assert.Contains(t, s.String(), "queries=2")
	assert.Equal(t, time.Second, s.AvgDuration())
}

func TestStatsReset(t *testing.T) {
	t.Parallel()
	stats := &QueryStats{}
	stats.TotalExecs.Add(3)
	stats.Errors.Add(1)
	stats.Reset()
	snap := stats.Stats()
	assert.Equal(t, int64(0), snap.TotalExecs)
	assert.Equal(t, int64(0), snap.Errors)
}

func TestStatsDriverTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sd := NewStatsDriver(OpenDB(dialect.Postgres, db))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := sd.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), "INSERT INTO users DEFAULT VALUES", []any{}, nil))
	require.NoError(t, tx.Commit())
	assert.Equal(t, int64(1), sd.QueryStats().Stats().TotalExecs)
	require.NoError(t, mock.ExpectationsWereMet())
}
