package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPlaceholders(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{DriverPostgres, "SELECT number FROM routes WHERE number = $1"},
		{DriverSQLite, "SELECT number FROM routes WHERE number = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			query, args, err := For(tt.driver).Select("number").From("routes").Where(squirrel.Eq{"number": 7}).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []interface{}{7}, args)
		})
	}
}
