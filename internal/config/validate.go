package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if c.Server.AdminPassword == "" {
		errs = append(errs, "server.admin_password: required; all admin routes are gated by it")
	}

	if c.ImageHost != nil {
		if c.ImageHost.Cloud == "" {
			errs = append(errs, "imagehost.cloud: required when imagehost is configured")
		}
		if c.ImageHost.APIKey == "" {
			errs = append(errs, "imagehost.api_key: required when imagehost is configured")
		}
	}

	return errs
}
