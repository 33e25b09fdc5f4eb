package adapters

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xcodegen-deps/internal/ports"
	"xcodegen-deps/internal/shared"
)

const linkerFlagsKey = "OTHER_LDFLAGS"

// XCConfigFileAdapter reads build settings from .xcconfig files.
type XCConfigFileAdapter struct{}

func NewXCConfigFileAdapter() XCConfigFileAdapter {
	return XCConfigFileAdapter{}
}

// ReadLinkerFlags returns the value of the first OTHER_LDFLAGS line.  The
// value is everything after the first '=', trimmed of surrounding spaces.
func (a XCConfigFileAdapter) ReadLinkerFlags(settingsPath string) (string, bool, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return "", false, errbuilder.New().
			WithCode(shared.FileErrorCode(err)).
			WithMsg("failed to read settings file " + settingsPath).
			WithCause(err)
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok || strings.TrimSpace(key) != linkerFlagsKey {
			continue
		}
		return strings.TrimSpace(value), true, nil
	}
	if err := scanner.Err(); err != nil {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan settings file " + settingsPath).
			WithCause(err)
	}
	return "", false, nil
}

var _ ports.LinkerSettingsPort = XCConfigFileAdapter{}
