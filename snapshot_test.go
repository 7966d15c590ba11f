package kverrors

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var update = flag.Bool("update", false, "rewrite golden files in testdata")

type snapshotEntry struct {
	Kind    string `yaml:"kind"`
	Code    string `yaml:"code"`
	Message string `yaml:"message"`
}

// TestStatusSnapshot pins the wire status of every kind. etcd clients match
// on these codes and messages; a change here breaks them.
func TestStatusSnapshot(t *testing.T) {
	golden := filepath.Join("testdata", "status_snapshot.yaml")

	var got []snapshotEntry
	for _, e := range samples() {
		st := ToStatus(e)
		got = append(got, snapshotEntry{
			Kind:    string(e.Kind()),
			Code:    st.Code().String(),
			Message: st.Message(),
		})
	}

	if *update {
		data, err := yaml.Marshal(got)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(golden, data, 0o644))
	}

	data, err := os.ReadFile(golden)
	require.NoError(t, err)

	var want []snapshotEntry
	require.NoError(t, yaml.Unmarshal(data, &want))
	require.Equal(t, want, got)
}
