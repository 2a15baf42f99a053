package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	dialector, mock := mockDialector(t)
	db, err := open(context.Background(), dialector, Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "INT(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("Name", "VARCHAR(64)", "YES", "", "guest", "")
	mock.ExpectQuery("SHOW COLUMNS FROM `users`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "users")
	require.NoError(t, err)
	require.Len(t, columns, 2)

	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "int(11)", columns[0].Type)
	assert.Equal(t, "PRI", columns[0].Key)
	assert.Nil(t, columns[0].Default)

	assert.Equal(t, "name", columns[1].Field)
	require.NotNil(t, columns[1].Default)
	assert.Equal(t, "guest", *columns[1].Default)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_Errors(t *testing.T) {
	dialector, mock := mockDialector(t)
	db, err := open(context.Background(), dialector, Config{})
	require.NoError(t, err)

	_, err = GetTableColumns(db, "bad`name")
	assert.ErrorContains(t, err, "invalid table name")

	mock.ExpectQuery("SHOW COLUMNS FROM `missing`").WillReturnError(assert.AnError)
	_, err = GetTableColumns(db, "missing")
	assert.ErrorIs(t, err, assert.AnError)
}
