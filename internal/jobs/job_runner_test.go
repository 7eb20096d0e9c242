package jobs

import (
	"testing"

	"bizcelona-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestJobRunner_KeepAlive(t *testing.T) {
	t.Run("CountsProfiles", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM profiles`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		jr := NewJobRunner(postgres.NewStore(db), nil)
		jr.KeepAlive()

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SurvivesQueryFailure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM profiles`).
			WillReturnError(assert.AnError)

		jr := NewJobRunner(postgres.NewStore(db), nil)
		jr.KeepAlive()

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
