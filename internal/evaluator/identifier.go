package evaluator

import "golang.org/x/text/unicode/norm"

// normalizeName applies Unicode Normalization Form C to a source
// identifier, per ECMA-262's requirement that identifiers are compared in
// NFC regardless of how the source text encoded them. Adapted from the
// teacher's use of golang.org/x/text/unicode/norm in string_helpers.go
// (there, for rune-indexed string helpers; here, for binding names) — the
// same library solving the same "don't assume the bytes are already
// normalized" problem in a different corner of the evaluator.
func normalizeName(name string) string {
	return norm.NFC.String(name)
}
