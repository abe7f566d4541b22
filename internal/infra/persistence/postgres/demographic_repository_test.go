package postgres

import (
	"context"
	"testing"

	"heatmap/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemographicRepository_Upsert_InsertsNewRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDemographicRepository(db)

	mock.ExpectExec(`UPDATE "demographics" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "demographics"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	inserted, err := repo.Upsert(context.Background(), &entity.Demographic{ZipCode: "64101"})
	require.NoError(t, err)
	assert.True(t, inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDemographicRepository_Upsert_UpdatesExistingRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDemographicRepository(db)

	mock.ExpectExec(`UPDATE "demographics" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.Upsert(context.Background(), &entity.Demographic{ZipCode: "64101"})
	require.NoError(t, err)
	assert.False(t, inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDemographicRepository_Upsert_LostRaceReportsUpdate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDemographicRepository(db)

	// A concurrent load inserts the row between the missed update and the
	// insert; the duplicate-key failure must come back as an update.
	mock.ExpectExec(`UPDATE "demographics" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "demographics"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "demographics_zip_code_key"})
	mock.ExpectExec(`UPDATE "demographics" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.Upsert(context.Background(), &entity.Demographic{ZipCode: "64101"})
	require.NoError(t, err)
	assert.False(t, inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDemographicRepository_Upsert_InsertFailurePropagates(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDemographicRepository(db)

	mock.ExpectExec(`UPDATE "demographics" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "demographics"`).
		WillReturnError(&pgconn.PgError{Code: "57014", Message: "canceling statement"})

	_, err := repo.Upsert(context.Background(), &entity.Demographic{ZipCode: "64101"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert demographic record")
	require.NoError(t, mock.ExpectationsWereMet())
}
