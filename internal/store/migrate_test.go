package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationVersions_Sorted(t *testing.T) {
	t.Parallel()

	versions, err := migrationVersions()
	require.NoError(t, err)
	require.NotEmpty(t, versions)
	assert.Equal(t, "001_initial_schema.sql", versions[0])
	assert.IsNonDecreasing(t, versions)
}
