package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/donaldgifford/msp-alert-engine/internal/api/client"
)

func TestDecodeDocument_YAMLAndJSON(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"yaml": "tenant_id: acme\nname: High CPU\nseverity: high\ncondition:\n  metric: cpu_percent\n  operator: \">\"\n  threshold: 90\n",
		"json": `{"tenant_id":"acme","name":"High CPU","severity":"high","condition":{"metric":"cpu_percent","operator":">","threshold":90}}`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var req apiclient.RuleRequest
			require.NoError(t, decodeDocument([]byte(doc), &req))
			assert.Equal(t, "acme", req.TenantID)
			assert.Equal(t, "cpu_percent > 90", req.Condition.String())
		})
	}
}

func TestDecodeDocument_Errors(t *testing.T) {
	t.Parallel()

	var req apiclient.RuleRequest
	require.Error(t, decodeDocument([]byte(""), &req))
	require.Error(t, decodeDocument([]byte("name: [unclosed"), &req))
	require.Error(t, decodeDocument([]byte(`"just a string"`), &req))
}

func TestReadInput(t *testing.T) {
	t.Parallel()

	got, err := readInput(strings.NewReader("from stdin"), "-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(got))

	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x"), 0o600))
	got, err = readInput(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "name: x", string(got))

	_, err = readInput(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDecodeSamples(t *testing.T) {
	t.Parallel()

	batch, err := decodeSamples([]byte(`{"samples":[{"values":{"a":1}},{"values":{"a":2}}]}`))
	require.NoError(t, err)
	assert.Len(t, batch, 2)

	list, err := decodeSamples([]byte("- values: {disk_free_gb: 3}\n"))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.InDelta(t, 3, list[0].Values["disk_free_gb"], 0)

	_, err = decodeSamples([]byte(`{"samples":[]}`))
	require.Error(t, err)
}
