package core

import (
	"strings"

	"xcodegen-deps/internal/policies"
)

// LinkerFlagsKey is the build setting holding the target's linker flags.
const LinkerFlagsKey = "OTHER_LDFLAGS"

// TokenizeLinkerFlags strips quotes from a raw OTHER_LDFLAGS value, splits
// it on whitespace and removes the structural -framework and -ObjC flags.
func TokenizeLinkerFlags(raw string) []string {
	unquoted := strings.ReplaceAll(raw, `"`, "")
	fields := strings.Fields(unquoted)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if policies.IsStructuralFlag(field) {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// DependencyTokens splits the tokenized flags into the leading
// self-reference and the dependency names that follow it.
func DependencyTokens(raw string) (string, []string) {
	tokens := TokenizeLinkerFlags(raw)
	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}
