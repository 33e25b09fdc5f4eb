package core

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xcodegen-deps/internal/shared"
)

func missingLinkerSettingsError(target string, settingsPath string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("missing linker settings: %s not set for target %s (%s)", LinkerFlagsKey, target, settingsPath))
}

func artifactResolutionError(token string, cause error) error {
	code := errbuilder.CodeInternal
	if errors.Is(cause, fs.ErrPermission) {
		code = errbuilder.CodePermissionDenied
	}
	return errbuilder.New().
		WithCode(code).
		WithMsg(fmt.Sprintf("artifact resolution failed for %s: %v", token, cause)).
		WithCause(cause)
}

// withTarget keeps the code of err and names the target in its message.
func withTarget(err error, target string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeOf(err)).
		WithMsg(fmt.Sprintf("%s (target %s)", shared.ErrorMessage(err), target)).
		WithCause(err)
}
