package adapters

import (
	"debug/macho"
	"encoding/binary"
	"fmt"
	"os"

	"xcodegen-deps/internal/ports"
	"xcodegen-deps/internal/types"
)

// MachOInspector classifies Apple binaries from their Mach-O header.
// Universal binaries are classified by their first slice.
type MachOInspector struct{}

func NewMachOInspector() MachOInspector {
	return MachOInspector{}
}

func (i MachOInspector) Inspect(artifactPath string) (types.BinaryKind, error) {
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
	switch {
	case magicUint32(magic, binary.BigEndian) == macho.MagicFat:
		slice, err := firstFatSliceMagic(path)
		if err != nil {
			return "", fmt.Errorf("read universal binary %s: %w", path, err)
		}
		if isArchive(slice) {
			return types.BinaryKindStatic, nil
		}
		fat, err := macho.OpenFat(path)
		if err != nil {
			return "", fmt.Errorf("read universal binary %s: %w", path, err)
		}
		defer fat.Close()
		return machoKind(path, fat.Arches[0].Type)
	case isThinMachO(magic):
		file, err := macho.Open(path)
		if err != nil {
			return "", fmt.Errorf("read mach-o %s: %w", path, err)
		}
		defer file.Close()
		return machoKind(path, file.Type)
	default:
		return "", fmt.Errorf("unrecognized binary format at %s", path)
	}
}

// firstFatSliceMagic returns the leading bytes of the first architecture
// in a universal binary.  lipo output of static libraries wraps ar
// archives, which macho.OpenFat cannot parse.
func firstFatSliceMagic(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var header struct {
		Magic uint32
		NArch uint32
	}
	if err := binary.Read(file, binary.BigEndian, &header); err != nil {
		return nil, err
	}
	if header.NArch == 0 {
		return nil, fmt.Errorf("no architectures in fat header")
	}
	var arch macho.FatArchHeader
	if err := binary.Read(file, binary.BigEndian, &arch); err != nil {
		return nil, err
	}
	magic := make([]byte, len(archiveMagic))
	n, err := file.ReadAt(magic, int64(arch.Offset))
	if n == 0 && err != nil {
		return nil, fmt.Errorf("first slice at offset %d: %w", arch.Offset, err)
	}
	return magic[:n], nil
}

func isThinMachO(magic []byte) bool {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		switch magicUint32(magic, order) {
		case macho.Magic32, macho.Magic64:
			return true
		}
	}
	return false
}

func machoKind(path string, fileType macho.Type) (types.BinaryKind, error) {
	switch fileType {
	case macho.TypeDylib, macho.TypeBundle:
		return types.BinaryKindDynamic, nil
	case macho.TypeObj:
		return types.BinaryKindStatic, nil
	default:
		return "", fmt.Errorf("unsupported mach-o file type %s at %s", fileType, path)
	}
}

var _ ports.BinaryInspectorPort = MachOInspector{}
