package database

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	script := "CREATE TABLE a (id NUMBER)\n/\n\nCREATE INDEX idx_a ON a (id)\n/\n"
	assert.Equal(t, []string{"CREATE TABLE a (id NUMBER)", "CREATE INDEX idx_a ON a (id)"}, SplitStatements(script))
	assert.Empty(t, SplitStatements("\n/\n"))
}

func TestRunScriptMigrations_ExecutesUpFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000002_b.up.sql"), []byte("CREATE TABLE b (id NUMBER)\n/\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_a.up.sql"), []byte("CREATE TABLE a (id NUMBER)\n/\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_a.down.sql"), []byte("DROP TABLE a\n"), 0o600))

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (id NUMBER)")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id NUMBER)")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, RunScriptMigrations(db, dir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunScriptMigrations_MissingDirectory(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, RunScriptMigrations(db, filepath.Join(t.TempDir(), "missing")))
}
