// Package shared provides error helpers used across the core, adapter and
// cli packages.
package shared

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ErrorMessage returns the builder message of err when it has one, and
// err.Error() otherwise.
func ErrorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

// IsNotFound reports whether a filesystem error means the path is absent.
// A file standing where a directory is expected counts as absent.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// FileErrorCode maps a filesystem error onto an errbuilder code.
func FileErrorCode(err error) errbuilder.ErrCode {
	switch {
	case IsNotFound(err):
		return errbuilder.CodeNotFound
	case errors.Is(err, fs.ErrPermission):
		return errbuilder.CodePermissionDenied
	default:
		return errbuilder.CodeInternal
	}
}
