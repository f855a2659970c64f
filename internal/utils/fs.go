package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DirStatus is what CheckDirStatus found out about a directory.
type DirStatus struct {
	Exists   bool
	Writable bool
	Error    error
}

// FileExists reports whether anything exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDataFile reports whether path is a regular file that can be loaded.
func IsDataFile(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular()
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// EnsureParentDir creates the directory a file at path will be written to.
func EnsureParentDir(path string) error {
	return EnsureDir(filepath.Dir(path))
}

// SaveTOMLFile encodes data as TOML into filePath, creating parent dirs.
func SaveTOMLFile(data any, filePath string) error {
	if err := EnsureParentDir(filePath); err != nil {
		return err
	}
	file, err := os.Create(filePath)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	if err := toml.NewEncoder(file).Encode(data); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", filePath, err)
	}
	return file.Close()
}

// DisplayPath returns path made absolute for log output. An empty path means
// no file was used.
func DisplayPath(path string) string {
	if path == "" {
		return "builtin defaults"
	}
	if absPath, err := filepath.Abs(path); err == nil {
		return absPath
	}
	return path
}

// isWritable creates and removes a temp file in dirPath.
func isWritable(dirPath string) bool {
	file, err := os.CreateTemp(dirPath, ".wordpredict-*")
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dirPath, err)
		return false
	}
	name := file.Name()
	file.Close()
	os.Remove(name)
	return true
}

// GetExecutableDir returns the directory of the running binary, used when no
// home directory is available.
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// CheckDirStatus creates dirPath when missing and reports whether it can be
// written to.
func CheckDirStatus(dirPath string) DirStatus {
	var status DirStatus
	if err := EnsureDir(dirPath); err != nil {
		status.Error = err
		log.Warnf("Cannot create directory %s: %v", dirPath, err)
		return status
	}
	status.Exists = true
	status.Writable = isWritable(dirPath)
	return status
}
