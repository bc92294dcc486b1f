package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-o", "datadir", "-f", "filesdir", "-s", "secret",
			"-t", "30", "-d", "db", "-b", "bucket", "-u", "user", "-p", "password",
			"-g", "us-west-1", "-e", "http://endpoint", "-l", "vault.example.com",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddr:            "127.0.0.1:9090",
				DataDir:                 "datadir",
				FilesRoot:               "filesdir",
				SecretKey:               "secret",
				SessionValidityDuration: 30 * time.Minute,
				DatabaseDSN:             "db",
				S3RootUser:              "user",
				S3RootPassword:          "password",
				S3Bucket:                "bucket",
				S3Region:                "us-west-1",
				S3BaseEndpoint:          "http://endpoint",
				AutoTLSHost:             "vault.example.com",
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
