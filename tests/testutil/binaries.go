package testutil

import (
	"bytes"
	"encoding/binary"
)

// Mach-O and ELF file types used by the fixtures.
const (
	MachOObject uint32 = 1
	MachOExec   uint32 = 2
	MachODylib  uint32 = 6

	ELFRel  uint16 = 1
	ELFExec uint16 = 2
	ELFDyn  uint16 = 3
)

const (
	machoMagic64  uint32 = 0xfeedfacf
	machoFatMagic uint32 = 0xcafebabe
	cpuAMD64      uint32 = 0x01000007
	cpuARM64      uint32 = 0x0100000c
	cpuSubtypeAll uint32 = 3
)

// ArchiveBinary is the smallest static archive: the ar global header.
func ArchiveBinary() []byte {
	return []byte("!<arch>\n")
}

// MachOBinary returns a 64-bit little-endian Mach-O header without load
// commands.
func MachOBinary(fileType uint32) []byte {
	return machoHeader(cpuAMD64, fileType)
}

func machoHeader(cpu uint32, fileType uint32) []byte {
	var buf bytes.Buffer
	for _, v := range []uint32{machoMagic64, cpu, cpuSubtypeAll, fileType, 0, 0, 0, 0} {
		_ = binary.Write(&buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}

// FatMachOBinary wraps one thin header per file type in a universal
// binary, first slice arm64, second x86_64.
func FatMachOBinary(fileTypes ...uint32) []byte {
	slices := make([][]byte, 0, len(fileTypes))
	for i, fileType := range fileTypes {
		slices = append(slices, machoHeader(fatCPUs[i%len(fatCPUs)], fileType))
	}
	return fatBinary(slices)
}

// FatArchiveBinary is a universal static library as lipo writes it: a fat
// header over one ar archive per architecture.
func FatArchiveBinary() []byte {
	return fatBinary([][]byte{ArchiveBinary(), ArchiveBinary()})
}

var fatCPUs = []uint32{cpuARM64, cpuAMD64}

func fatBinary(slices [][]byte) []byte {
	const sliceAlign = 64
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, machoFatMagic)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(slices)))
	offset := uint32(sliceAlign)
	for i, slice := range slices {
		for _, v := range []uint32{fatCPUs[i%len(fatCPUs)], cpuSubtypeAll, offset, uint32(len(slice)), 0} {
			_ = binary.Write(&buf, binary.BigEndian, v)
		}
		offset += sliceAlign
	}
	out := buf.Bytes()
	for i, slice := range slices {
		start := sliceAlign * (i + 1)
		padded := make([]byte, start+len(slice))
		copy(padded, out)
		copy(padded[start:], slice)
		out = padded
	}
	return out
}

// ELFBinary returns a 64-bit little-endian ELF header without sections.
func ELFBinary(fileType uint16) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	_ = binary.Write(&buf, binary.LittleEndian, fileType)
	_ = binary.Write(&buf, binary.LittleEndian, uint16(62))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint64(0))
	_ = binary.Write(&buf, binary.LittleEndian, uint64(0))
	_ = binary.Write(&buf, binary.LittleEndian, uint64(0))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0))
	for _, v := range []uint16{64, 56, 0, 64, 0, 0} {
		_ = binary.Write(&buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}
