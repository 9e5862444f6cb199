package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestKVRepo_Get(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedValue string
		expectedFound bool
		expectedError bool
	}{
		{
			name:          "value found",
			key:           "vocabulary-layers",
			mockRows:      sqlmock.NewRows([]string{"value"}).AddRow(`[]`),
			expectedValue: `[]`,
			expectedFound: true,
		},
		{
			name:          "key not exists",
			key:           "missing",
			mockError:     sql.ErrNoRows,
			expectedFound: false,
		},
		{
			name:          "database error",
			key:           "vocabulary-layers",
			mockError:     fmt.Errorf("connection reset"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewKVRepo(db)

			query := "SELECT value FROM kv_store WHERE key = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.key).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.key).WillReturnRows(tt.mockRows)
			}

			value, found, err := repo.Get(tt.key)

			if tt.expectedError {
				assert.Error(t, err)
				assert.False(t, found)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedFound, found)
				assert.Equal(t, tt.expectedValue, value)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestKVRepo_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKVRepo(db)

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("vocabulary-layers", `[{"id":"1"}]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Set("vocabulary-layers", `[{"id":"1"}]`)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepo_Set_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKVRepo(db)

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("k", "v").
		WillReturnError(fmt.Errorf("disk full"))

	err = repo.Set("k", "v")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}
