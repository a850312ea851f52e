package database

import (
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDSN(t *testing.T) {
	t.Parallel()

	got, err := normalizeDSN("app:secret@tcp(127.0.0.1:3306)/studybuddy")
	require.NoError(t, err)

	cfg, err := mysql.ParseDSN(got)
	require.NoError(t, err)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, "studybuddy", cfg.DBName)
	assert.Equal(t, "127.0.0.1:3306", cfg.Addr)

	_, err = normalizeDSN("no-slash-here")
	require.Error(t, err)
}

func TestSchema_OneStatementEach(t *testing.T) {
	t.Parallel()

	for i, stmt := range schema {
		trimmed := strings.TrimSpace(stmt)
		assert.True(t, strings.HasPrefix(trimmed, "CREATE TABLE IF NOT EXISTS"), "statement %d", i)
		assert.NotContains(t, trimmed, ";", "statement %d", i)
	}
}
