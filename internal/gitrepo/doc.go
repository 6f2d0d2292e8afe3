// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes RepositoryManager for initializing repositories, staging and
// committing changes, and managing branches and remotes, along with
// structured remote URL parsing and formatting.
package gitrepo
