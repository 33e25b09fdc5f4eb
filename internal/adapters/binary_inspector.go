package adapters

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xcodegen-deps/internal/ports"
	"xcodegen-deps/internal/shared"
	"xcodegen-deps/internal/types"
)

var archiveMagic = []byte("!<arch>\n")

// NewBinaryInspector returns the inspector for the given platform.
func NewBinaryInspector(platform types.Platform) (ports.BinaryInspectorPort, error) {
	switch platform {
	case types.PlatformApple, "":
		return NewMachOInspector(), nil
	case types.PlatformLinux:
		return NewELFInspector(), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported platform %q", platform))
	}
}

// locateBinary maps an artifact path to the file holding its code.
// Bundles keep the binary inside; plain libraries are the binary.
func locateBinary(artifactPath string) (string, error) {
	base := filepath.Base(artifactPath)
	switch {
	case strings.HasSuffix(base, ".framework"):
		return frameworkBinary(artifactPath, strings.TrimSuffix(base, ".framework"))
	case strings.HasSuffix(base, ".xcframework"):
		return xcframeworkBinary(artifactPath, strings.TrimSuffix(base, ".xcframework"))
	default:
		return artifactPath, nil
	}
}

func frameworkBinary(bundle string, name string) (string, error) {
	candidates := []string{
		filepath.Join(bundle, name),
		filepath.Join(bundle, "Versions", "Current", name),
	}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !shared.IsNotFound(err) {
			return "", err
		}
	}
	return "", fmt.Errorf("framework %s has no binary named %s", bundle, name)
}

func xcframeworkBinary(bundle string, name string) (string, error) {
	patterns := []string{
		filepath.Join(bundle, "*", name+".framework"),
		filepath.Join(bundle, "*", "lib"+name+".a"),
		filepath.Join(bundle, "*", "lib"+name+".dylib"),
	}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return "", err
		}
		if len(matches) == 0 {
			continue
		}
		if strings.HasSuffix(matches[0], ".framework") {
			return frameworkBinary(matches[0], name)
		}
		return matches[0], nil
	}
	return "", fmt.Errorf("xcframework %s has no slice for %s", bundle, name)
}

// readMagic returns up to the first eight bytes of path.
func readMagic(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	buf := make([]byte, len(archiveMagic))
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		if err == io.EOF {
			return nil, fmt.Errorf("%s is empty", path)
		}
		return nil, err
	}
	return buf[:n], nil
}

func isArchive(magic []byte) bool {
	return bytes.Equal(magic, archiveMagic)
}

func magicUint32(magic []byte, order binary.ByteOrder) uint32 {
	if len(magic) < 4 {
		return 0
	}
	return order.Uint32(magic[:4])
}
