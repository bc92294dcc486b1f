package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/filevault/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
// The session validity is given in minutes.
type JsonConfig struct {
	EndpointAddr           string `json:"endpoint_addr"`
	DataDir                string `json:"data_dir"`
	FilesRoot              string `json:"files_root"`
	SecretKey              string `json:"secret_key"`
	SessionValidityMinutes int    `json:"session_validity_minutes"`
	DatabaseDSN            string `json:"database_dsn"`
	S3RootUser             string `json:"s3_root_user"`
	S3RootPassword         string `json:"s3_root_password"`
	S3Bucket               string `json:"s3_bucket"`
	S3Region               string `json:"s3_region"`
	S3BaseEndpoint         string `json:"s3_base_endpoint"`
	AutoTLSHost            string `json:"auto_tls_host"`
	AutoTLSCacheDir        string `json:"auto_tls_cache_dir"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
//
// Only fields present in the file override the current values; zero values
// are left untouched so defaults survive a partial config file.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DataDir != "" {
		config.DataDir = c.DataDir
	}
	if c.FilesRoot != "" {
		config.FilesRoot = c.FilesRoot
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionValidityMinutes > 0 {
		config.SessionValidityDuration = time.Duration(c.SessionValidityMinutes) * time.Minute
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.S3RootUser != "" {
		config.S3RootUser = c.S3RootUser
	}
	if c.S3RootPassword != "" {
		config.S3RootPassword = c.S3RootPassword
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
	if c.AutoTLSHost != "" {
		config.AutoTLSHost = c.AutoTLSHost
	}
	if c.AutoTLSCacheDir != "" {
		config.AutoTLSCacheDir = c.AutoTLSCacheDir
	}
}
