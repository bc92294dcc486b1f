// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the FileVault server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DataDir: directory holding the users and files JSON documents.
//   - FilesRoot: root of the per-user upload directory tree.
//   - SecretKey: HMAC secret for signing session cookies (HS256). Do not use test defaults in prod.
//   - SessionValidityDuration: lifetime of an issued session cookie.
//   - DatabaseDSN: optional PostgreSQL DSN (pgx); when set, credentials and the
//     file index are kept in Postgres instead of the flat JSON documents.
//   - S3Bucket / S3Region / S3BaseEndpoint / S3RootUser / S3RootPassword:
//     optional S3-compatible blob backend; when S3Bucket is set, uploaded file
//     bytes go to object storage instead of local disk.
//   - AutoTLSHost / AutoTLSCacheDir: optional automatic TLS via ACME.
type Config struct {
	EndpointAddr            string
	DataDir                 string
	FilesRoot               string
	SecretKey               string
	SessionValidityDuration time.Duration
	DatabaseDSN             string
	S3RootUser              string
	S3RootPassword          string
	S3Bucket                string
	S3Region                string
	S3BaseEndpoint          string
	AutoTLSHost             string
	AutoTLSCacheDir         string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DataDir = "data"
	c.FilesRoot = "files"
	c.SecretKey = "your-secret-key"
	c.SessionValidityDuration = 24 * time.Hour
	c.DatabaseDSN = ""
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.AutoTLSHost = ""
	c.AutoTLSCacheDir = "autocert-cache"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
