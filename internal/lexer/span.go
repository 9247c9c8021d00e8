package lexer

import "github.com/lumen-lang/lumen/internal/ast"

func spanAt(line, col int) ast.Span {
	p := ast.Pos{Line: line, Column: col}
	return ast.Span{Start: p, End: p}
}
