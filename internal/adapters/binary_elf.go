package adapters

import (
	"bytes"
	"debug/elf"
	"fmt"

	"xcodegen-deps/internal/ports"
	"xcodegen-deps/internal/types"
)

// ELFInspector classifies Linux shared objects and archives.
type ELFInspector struct{}

func NewELFInspector() ELFInspector {
	return ELFInspector{}
}

func (i ELFInspector) Inspect(artifactPath string) (types.BinaryKind, error) {
	path, err := locateBinary(artifactPath)
	if err != nil {
		return "", err
	}
	magic, err := readMagic(path)
	if err != nil {
		return "", err
	}
	if isArchive(magic) {
		return types.BinaryKindStatic, nil
	}
	if !bytes.HasPrefix(magic, []byte(elf.ELFMAG)) {
		return "", fmt.Errorf("unrecognized binary format at %s", path)
	}
	file, err := elf.Open(path)
	if err != nil {
		return "", fmt.Errorf("read elf %s: %w", path, err)
	}
	defer file.Close()
	switch file.Type {
	case elf.ET_DYN:
		return types.BinaryKindDynamic, nil
	case elf.ET_REL:
		return types.BinaryKindStatic, nil
	default:
		return "", fmt.Errorf("unsupported elf file type %s at %s", file.Type, path)
	}
}

var _ ports.BinaryInspectorPort = ELFInspector{}
