// Package config wraps Viper access to the user-level configuration file
// (~/.mcplug/config.yaml) and MCPLUG_* environment variables. Endpoint URLs
// and multipart field names default to the embedded branding values and can
// be overridden per user or per environment.
package config
