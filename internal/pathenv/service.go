package pathenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	pathutils "github.com/repokit/repoinit/internal/utils/path"
)

const (
	exportLineTemplateConstant       = "export PATH=\"%s:$PATH\""
	exportCommentConstant            = "# Added by repoinit"
	profileFilePermissionsConstant   = fs.FileMode(0o644)
	shellEnvironmentVariableConstant = "SHELL"
	homeEnvironmentVariableConstant  = "HOME"

	zshProfileFileNameConstant     = ".zshrc"
	bashProfileFileNameConstant    = ".bashrc"
	defaultProfileFileNameConstant = ".profile"
	zshShellNameConstant           = "zsh"
	bashShellNameConstant          = "bash"

	fileSystemMissingMessageConstant       = "file system not configured"
	homeDirectoryUnresolvedMessageConstant = "unable to determine home directory for profile resolution"
	directoryResolutionErrorTemplate       = "unable to resolve directory to add: %w"
	profileResolutionErrorTemplateConstant = "unable to resolve shell profile path: %w"
	profileWriteErrorTemplateConstant      = "unable to update shell profile %s: %w"
	executableResolutionErrorTemplate      = "unable to locate executable directory: %w"

	logMessageEntryAddedConstant          = "Added PATH entry to shell profile"
	logMessageEntryAlreadyPresentConstant = "Shell profile already contains PATH entry"
	logFieldProfilePathConstant           = "profile"
	logFieldDirectoryPathConstant         = "directory"
)

// FileSystem abstracts profile file access.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, permissions fs.FileMode) error
}

// OSFileSystem implements FileSystem against the host operating system.
type OSFileSystem struct{}

// ReadFile proxies os.ReadFile.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile proxies os.WriteFile.
func (OSFileSystem) WriteFile(path string, content []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, content, permissions)
}

// ServiceDependencies describes required collaborators for PATH extension.
type ServiceDependencies struct {
	Logger                 *zap.Logger
	FileSystem             FileSystem
	EnvironmentLookup      func(name string) (string, bool)
	ExecutablePathProvider func() (string, error)
	PathResolver           *pathutils.TargetPathResolver
}

// Options configures a single PATH extension run.
type Options struct {
	DirectoryPath string
	ProfilePath   string
}

// Result captures the observable outcomes of a PATH extension run.
type Result struct {
	DirectoryPath string
	ProfilePath   string
	Modified      bool
}

// Service appends a directory to the persistent PATH via the shell profile.
type Service struct {
	logger                 *zap.Logger
	fileSystem             FileSystem
	environmentLookup      func(name string) (string, bool)
	executablePathProvider func() (string, error)
	pathResolver           *pathutils.TargetPathResolver
}

var errFileSystemMissing = errors.New(fileSystemMissingMessageConstant)

// NewService constructs a Service with the provided dependencies, substituting
// operating-system defaults for absent collaborators.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	fileSystem := dependencies.FileSystem
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}

	environmentLookup := dependencies.EnvironmentLookup
	if environmentLookup == nil {
		environmentLookup = os.LookupEnv
	}

	executablePathProvider := dependencies.ExecutablePathProvider
	if executablePathProvider == nil {
		executablePathProvider = os.Executable
	}

	pathResolver := dependencies.PathResolver
	if pathResolver == nil {
		pathResolver = pathutils.NewTargetPathResolver()
	}

	return &Service{
		logger:                 logger,
		fileSystem:             fileSystem,
		environmentLookup:      environmentLookup,
		executablePathProvider: executablePathProvider,
		pathResolver:           pathResolver,
	}, nil
}

// Execute ensures the shell profile exports the requested directory on PATH.
func (service *Service) Execute(options Options) (Result, error) {
	if service.fileSystem == nil {
		return Result{}, errFileSystemMissing
	}

	directoryPath, directoryError := service.resolveDirectoryPath(options.DirectoryPath)
	if directoryError != nil {
		return Result{}, directoryError
	}

	profilePath, profileError := service.resolveProfilePath(options.ProfilePath)
	if profileError != nil {
		return Result{}, profileError
	}

	result := Result{DirectoryPath: directoryPath, ProfilePath: profilePath}

	exportLine := fmt.Sprintf(exportLineTemplateConstant, directoryPath)

	existingContent := ""
	if content, readError := service.fileSystem.ReadFile(profilePath); readError == nil {
		existingContent = string(content)
	}

	if profileContainsLine(existingContent, exportLine) {
		service.logger.Info(
			logMessageEntryAlreadyPresentConstant,
			zap.String(logFieldProfilePathConstant, profilePath),
			zap.String(logFieldDirectoryPathConstant, directoryPath),
		)
		return result, nil
	}

	if len(existingContent) > 0 && !strings.HasSuffix(existingContent, "\n") {
		existingContent += "\n"
	}
	updatedContent := existingContent + exportCommentConstant + "\n" + exportLine + "\n"

	if writeError := service.fileSystem.WriteFile(profilePath, []byte(updatedContent), profileFilePermissionsConstant); writeError != nil {
		return result, fmt.Errorf(profileWriteErrorTemplateConstant, profilePath, writeError)
	}

	result.Modified = true
	service.logger.Info(
		logMessageEntryAddedConstant,
		zap.String(logFieldProfilePathConstant, profilePath),
		zap.String(logFieldDirectoryPathConstant, directoryPath),
	)
	return result, nil
}

func (service *Service) resolveDirectoryPath(candidatePath string) (string, error) {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		executablePath, executableError := service.executablePathProvider()
		if executableError != nil {
			return "", fmt.Errorf(executableResolutionErrorTemplate, executableError)
		}
		return filepath.Dir(executablePath), nil
	}

	resolvedPath, resolutionError := service.pathResolver.Resolve(trimmedPath)
	if resolutionError != nil {
		return "", fmt.Errorf(directoryResolutionErrorTemplate, resolutionError)
	}
	return resolvedPath, nil
}

func (service *Service) resolveProfilePath(candidatePath string) (string, error) {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) > 0 {
		resolvedPath, resolutionError := service.pathResolver.Resolve(trimmedPath)
		if resolutionError != nil {
			return "", fmt.Errorf(profileResolutionErrorTemplateConstant, resolutionError)
		}
		return resolvedPath, nil
	}

	homeDirectory, homeAvailable := service.environmentLookup(homeEnvironmentVariableConstant)
	if !homeAvailable || len(strings.TrimSpace(homeDirectory)) == 0 {
		return "", fmt.Errorf(profileResolutionErrorTemplateConstant, errors.New(homeDirectoryUnresolvedMessageConstant))
	}

	return filepath.Join(homeDirectory, service.profileFileName()), nil
}

func (service *Service) profileFileName() string {
	shellPath, shellAvailable := service.environmentLookup(shellEnvironmentVariableConstant)
	if !shellAvailable {
		return defaultProfileFileNameConstant
	}
	switch filepath.Base(shellPath) {
	case zshShellNameConstant:
		return zshProfileFileNameConstant
	case bashShellNameConstant:
		return bashProfileFileNameConstant
	default:
		return defaultProfileFileNameConstant
	}
}

func profileContainsLine(profileContent string, exportLine string) bool {
	for _, profileLine := range strings.Split(profileContent, "\n") {
		if strings.TrimSpace(profileLine) == exportLine {
			return true
		}
	}
	return false
}
