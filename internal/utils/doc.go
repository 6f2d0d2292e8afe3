// Package utils provides shared infrastructure for loggers, configuration
// loading, and command context plumbing.
package utils
