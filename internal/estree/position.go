// Package estree defines the subset of the ESTree AST shape this evaluator
// consumes, and the JSON decoder that turns a serialized parser tree into
// typed nodes.
package estree

import "fmt"

// Position is a single line/column location within a source document,
// 1-indexed the way ESTree (and most JS tooling) reports them.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String renders the position as "line:column" for error messages.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceLocation is the optional `loc` field ESTree attaches to every node.
type SourceLocation struct {
	Source *string  `json:"source"`
	Start  Position `json:"start"`
	End    Position `json:"end"`
}
