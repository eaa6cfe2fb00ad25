package metrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresCollector_NewPostgresCollector(t *testing.T) {
	t.Run("creates collector successfully", func(t *testing.T) {
		collector := NewPostgresCollector(nil)
		assert.NotNil(t, collector)
	})
}

func TestPostgresCollector_Collect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM book`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM note`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(30))
	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating::numeric\), 0\)`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7.8))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM book WHERE updated_at >`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	collector := NewPostgresCollector(db)
	m, err := collector.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), m.Books)
	assert.Equal(t, int64(30), m.Notes)
	assert.Equal(t, 7.8, m.AverageRating)
	assert.Equal(t, int64(3), m.RecentlyUpdated)
	assert.False(t, m.Timestamp.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCollector_GetAverageRating(t *testing.T) {
	t.Run("empty catalog averages to zero", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating::numeric\), 0\)`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

		collector := NewPostgresCollector(db)
		avg, err := collector.GetAverageRating(context.Background())
		require.NoError(t, err)
		assert.Zero(t, avg)
	})
}

func TestCollector_Interface(t *testing.T) {
	t.Run("PostgresCollector implements Collector interface", func(t *testing.T) {
		var _ Collector = (*PostgresCollector)(nil)
	})
}
