package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddr, ":3000")
	assert.Equal(t, c.DataDir, "data")
	assert.Equal(t, c.FilesRoot, "files")
	assert.Equal(t, c.SecretKey, "your-secret-key")
	assert.Equal(t, c.SessionValidityDuration, 24*time.Hour)
	assert.Equal(t, c.DatabaseDSN, "")
	assert.Equal(t, c.S3RootUser, "admin")
	assert.Equal(t, c.S3RootPassword, "secretpassword")
	assert.Equal(t, c.S3Bucket, "")
	assert.Equal(t, c.S3Region, "us-east-1")
	assert.Equal(t, c.S3BaseEndpoint, "http://127.0.0.1:9000/")
	assert.Equal(t, c.AutoTLSHost, "")
	assert.Equal(t, c.AutoTLSCacheDir, "autocert-cache")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddr, ":3000")
	assert.Equal(t, c.DataDir, "data")
	assert.Equal(t, c.FilesRoot, "files")
	assert.Equal(t, c.SessionValidityDuration, 24*time.Hour)
}
