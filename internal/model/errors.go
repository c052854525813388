package model

import "fmt"

// ConfigError reports a malformed simulation setup: mismatched vector
// lengths, a non-positive iteration count, a fixture referencing an unknown
// team. These are caller bugs and are detected before any replication runs.
type ConfigError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// ValidationError reports bad input data: negative goals, non-finite ELO
// ratings. Like ConfigError it aborts the whole call; the engine never
// returns partial results.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

func fieldf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
