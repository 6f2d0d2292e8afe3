// Package bootstrap turns a plain project directory into a Git repository
// bound to a freshly created or adopted GitHub remote.
//
// The Service sequences idempotent steps: dependency and authentication
// checks, remote and local repository creation, ignore file synthesis,
// the initial commit, remote binding, branch alignment, and the first push.
// Already-satisfied steps are skipped so re-running against a partially
// bootstrapped directory converges instead of failing.
package bootstrap
