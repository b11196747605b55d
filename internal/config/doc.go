// Package config loads and validates the service configuration.
//
// Configuration values are merged from three sources: environment
// variables, command-line flags, and an optional JSON file. Environment
// variables take precedence, then flags, then the JSON file; zero values
// never overwrite values set by a higher-priority source.
package config
