// Package githubcli wraps the GitHub CLI for authentication checks,
// repository lookup and creation, and default branch resolution.
package githubcli
