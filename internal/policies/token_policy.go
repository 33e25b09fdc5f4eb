package policies

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const (
	FlagFramework = "-framework"
	FlagObjC      = "-ObjC"
)

// IsStructuralFlag reports whether token is a linker marker that never
// names a dependency itself.
func IsStructuralFlag(token string) bool {
	return token == FlagFramework || token == FlagObjC
}

// ValidateToken rejects tokens that can be neither a bundle name nor an
// SDK name.
func ValidateToken(token string) error {
	if token == "" {
		return malformedToken(token, "token is empty")
	}
	if strings.ContainsAny(token, `/\`) {
		return malformedToken(token, "contains a path separator")
	}
	for _, r := range token {
		if !validTokenRune(r) {
			return malformedToken(token, fmt.Sprintf("contains illegal character %q", r))
		}
	}
	return nil
}

func validTokenRune(r rune) bool {
	if r > unicode.MaxASCII {
		return false
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '_', '-', '.', '+':
		return true
	default:
		return false
	}
}

func malformedToken(token string, reason string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("malformed token %q: %s", token, reason))
}
