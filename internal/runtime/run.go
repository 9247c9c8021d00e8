package runtime

import "github.com/lumen-lang/lumen/internal/ast"

// Run is the single host entry point: it evaluates program with
// capture and returns the single resulting Value, or the first error
// raised anywhere in the tree. The evaluator has no user-visible
// try/catch construct — every error bubbles here.
func Run(e *Evaluator, program ast.Node) (Value, error) {
	return e.evalCaptured(program)
}
