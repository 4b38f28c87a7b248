package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadfromFile(t *testing.T) {
	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")
	require.Equal(t, "celebra", cfg.MinIOUploader.Bucket)
	require.Equal(t, "6h", cfg.Sweeper.Interval)
}
