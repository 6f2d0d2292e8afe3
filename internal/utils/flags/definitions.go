// Package flags provides helpers for binding standardized flags to Cobra commands.
package flags

const (
	// AssumeYesFlagName exposes the shared assume-yes flag name.
	AssumeYesFlagName = "yes"
	// AssumeYesFlagShorthand provides the shorthand for the assume-yes flag.
	AssumeYesFlagShorthand = "y"
	// AssumeYesFlagUsage describes the shared assume-yes flag purpose.
	AssumeYesFlagUsage = "Automatically confirm prompts"
	// RemoteFlagName exposes the shared remote flag name.
	RemoteFlagName = "remote"
	// RemoteFlagUsage describes the shared remote flag purpose.
	RemoteFlagUsage = "Remote name to bind the repository to"
	// VisibilityFlagName exposes the repository visibility flag name.
	VisibilityFlagName = "visibility"
	// DirectoryFlagName exposes the working directory flag name.
	DirectoryFlagName = "dir"
	// DirectoryFlagUsage describes the working directory flag purpose.
	DirectoryFlagUsage = "Directory containing the project (defaults to the current directory)"
	// ProfileFlagName exposes the shell profile path flag name.
	ProfileFlagName = "profile"
	// ProfileFlagUsage describes the shell profile path flag purpose.
	ProfileFlagUsage = "Shell profile file to modify (defaults to the active shell's profile)"
)
