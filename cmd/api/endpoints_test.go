package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointsCommand(t *testing.T) {
	t.Setenv("NLP_SERVICE_URL", "nlp:9001/")
	t.Setenv("CF_SERVICE_URL", "https://cf.internal")
	t.Setenv("PLACEMENT_SERVICE_URL", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"endpoints"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())

	got := out.String()
	assert.Contains(t, got, "http://nlp:9001")
	assert.NotContains(t, got, "http://nlp:9001/")
	assert.Contains(t, got, "https://cf.internal")
	assert.Contains(t, got, "http://localhost:8003")
}
