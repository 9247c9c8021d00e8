// Package parser turns a token stream from internal/lexer into the
// internal/ast tree the evaluator consumes. It is a straightforward
// recursive-descent/Pratt hybrid, one precedence level per method, in
// the shape used throughout this codebase's interpreter lineage.
package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/langerr"
	"github.com/lumen-lang/lumen/internal/lexer"
)

type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// New starts a Parser positioned at the first token of src.
func New(src string) (*Parser, error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	p.cur = p.peek
	t, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.peek = t
	return nil
}

func (p *Parser) span() ast.Span {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	return ast.Span{Start: pos, End: pos}
}

func (p *Parser) skipNewlines() error {
	for p.cur.Type == lexer.NEWLINE {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) expect(t lexer.Type, what string) error {
	if p.cur.Type != t {
		return langerr.NewRuntime(p.span(), "expected %s, got %q", what, p.cur.Lexeme)
	}
	return p.advance()
}

// ParseProgram parses a full source file into a single Block node.
func (p *Parser) ParseProgram() (ast.Node, error) {
	start := p.span()
	var stmts []ast.Node
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	for p.cur.Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
	}
	return &ast.Block{Sp: spanTo(start, p.span()), Children: stmts}, nil
}

func spanTo(start, end ast.Span) ast.Span {
	return ast.Span{Start: start.Start, End: end.End}
}

func (p *Parser) parseStatement() (ast.Node, error) {
	start := p.span()

	global := false
	if p.cur.Type == lexer.GLOBAL {
		global = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if p.cur.Type == lexer.LPAREN {
		if node, ok, err := p.tryParseMultiAssign(start, global); err != nil {
			return nil, err
		} else if ok {
			return node, nil
		}
	}

	if p.cur.Type == lexer.IDENT && p.peek.Type == lexer.ASSIGN {
		return p.parseAssign(start, global)
	}
	if global {
		return nil, langerr.NewRuntime(start, "expected assignment after 'global'")
	}

	return p.parseExpressions()
}

// tryParseMultiAssign speculatively parses `(a, b, ...) = expr, ...`;
// on anything else it reports ok=false without consuming input in a
// way the caller can't recover from, since '(' also starts a grouped
// expression — the distinguishing signal is the '=' immediately after
// the matching ')'.
func (p *Parser) tryParseMultiAssign(start ast.Span, global bool) (ast.Node, bool, error) {
	save := *p
	save.lex = p.lex.Clone()
	if err := p.advance(); err != nil {
		return nil, false, err
	}
	var targets []*ast.Id
	for {
		if p.cur.Type != lexer.IDENT {
			*p = save
			return nil, false, nil
		}
		targets = append(targets, &ast.Id{Sp: p.span(), Path: []string{p.cur.Lexeme}})
		if err := p.advance(); err != nil {
			return nil, false, err
		}
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, false, err
			}
			continue
		}
		break
	}
	if p.cur.Type != lexer.RPAREN {
		*p = save
		return nil, false, nil
	}
	if err := p.advance(); err != nil {
		return nil, false, err
	}
	if p.cur.Type != lexer.ASSIGN {
		*p = save
		return nil, false, nil
	}
	if err := p.advance(); err != nil {
		return nil, false, err
	}
	var values []ast.Node
	for {
		v, err := p.parseExpr()
		if err != nil {
			return nil, false, err
		}
		values = append(values, v)
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, false, err
			}
			continue
		}
		break
	}
	return &ast.MultiAssign{Sp: spanTo(start, p.span()), Targets: targets, Values: values, Global: global}, true, nil
}

func (p *Parser) parseAssign(start ast.Span, global bool) (ast.Node, error) {
	name := p.cur.Lexeme
	idSpan := p.span()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ASSIGN, "'='"); err != nil {
		return nil, err
	}
	value, err := p.parseExpressions()
	if err != nil {
		return nil, err
	}
	target := &ast.Id{Sp: idSpan, Path: []string{name}}
	return &ast.Assign{Sp: spanTo(start, p.span()), Target: target, Value: value, Global: global}, nil
}

// parseExpressions parses a comma-joined sequence, each element
// captured independently, used for assignment
// right-hand sides and top-level expression statements.
func (p *Parser) parseExpressions() (ast.Node, error) {
	start := p.span()
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.COMMA {
		return first, nil
	}
	children := []ast.Node{first}
	for p.cur.Type == lexer.COMMA {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	return &ast.Expressions{Sp: spanTo(start, p.span()), Children: children}, nil
}

func (p *Parser) parseExpr() (ast.Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Node, error) {
	return p.parseBinaryLevel(p.parseAnd, map[lexer.Type]string{lexer.OR: "or"})
}

func (p *Parser) parseAnd() (ast.Node, error) {
	return p.parseBinaryLevel(p.parseEquality, map[lexer.Type]string{lexer.AND: "and"})
}

func (p *Parser) parseEquality() (ast.Node, error) {
	return p.parseBinaryLevel(p.parseRelational, map[lexer.Type]string{lexer.EQ: "==", lexer.NEQ: "!="})
}

func (p *Parser) parseRelational() (ast.Node, error) {
	return p.parseBinaryLevel(p.parseRange, map[lexer.Type]string{
		lexer.LT: "<", lexer.LTE: "<=", lexer.GT: ">", lexer.GTE: ">=",
	})
}

func (p *Parser) parseRange() (ast.Node, error) {
	start := p.span()
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.DOTDOT && p.cur.Type != lexer.DOTDOTEQ {
		return lhs, nil
	}
	inclusive := p.cur.Type == lexer.DOTDOTEQ
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &ast.RangeLit{Sp: spanTo(start, p.span()), Min: lhs, Max: rhs, Inclusive: inclusive}, nil
}

func (p *Parser) parseAdditive() (ast.Node, error) {
	return p.parseBinaryLevel(p.parseMultiplicative, map[lexer.Type]string{lexer.PLUS: "+", lexer.MINUS: "-"})
}

func (p *Parser) parseMultiplicative() (ast.Node, error) {
	return p.parseBinaryLevel(p.parseUnary, map[lexer.Type]string{
		lexer.STAR: "*", lexer.SLASH: "/", lexer.PERCENT: "%",
	})
}

func (p *Parser) parseBinaryLevel(next func() (ast.Node, error), ops map[lexer.Type]string) (ast.Node, error) {
	start := p.span()
	lhs, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.cur.Type]
		if !ok {
			return lhs, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Op{Sp: spanTo(start, p.span()), Operator: op, Lhs: lhs, Rhs: rhs}
	}
}

func (p *Parser) parseUnary() (ast.Node, error) {
	if p.cur.Type == lexer.MINUS {
		start := p.span()
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		zero := &ast.NumberLit{Sp: start, Value: 0}
		return &ast.Op{Sp: spanTo(start, p.span()), Operator: "-", Lhs: zero, Rhs: operand}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.Node, error) {
	start := p.span()
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.LBRACKET {
		if err := p.advance(); err != nil {
			return nil, err
		}
		idx, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACKET, "']'"); err != nil {
			return nil, err
		}
		id, ok := expr.(*ast.Id)
		if !ok {
			return nil, langerr.NewRuntime(start, "indexing target must be an identifier")
		}
		expr = &ast.IndexExpr{Sp: spanTo(start, p.span()), Target: id, Index: idx}
	}
	return expr, nil
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	start := p.span()
	switch p.cur.Type {
	case lexer.NUMBER:
		v, err := parseFloat(p.cur.Lexeme)
		if err != nil {
			return nil, langerr.NewRuntime(start, "invalid number literal %q", p.cur.Lexeme)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NumberLit{Sp: start, Value: v}, nil

	case lexer.STRING:
		s := p.cur.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StrLit{Sp: start, Value: s}, nil

	case lexer.TRUE, lexer.FALSE:
		v := p.cur.Type == lexer.TRUE
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BoolLit{Sp: start, Value: v}, nil

	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpressions()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return inner, nil

	case lexer.LBRACKET:
		return p.parseListLit(start)

	case lexer.LBRACE:
		return p.parseBlockOrMap(start)

	case lexer.PIPE:
		return p.parseFunctionLit(start)

	case lexer.IF:
		return p.parseIf(start)

	case lexer.FOR:
		return p.parseFor(start)

	case lexer.IDENT:
		return p.parseIdentOrCall(start)

	default:
		return nil, langerr.NewRuntime(start, "unexpected token %q", p.cur.Lexeme)
	}
}

func (p *Parser) parseListLit(start ast.Span) (ast.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var elems []ast.Node
	for p.cur.Type != lexer.RBRACKET {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	return &ast.ListLit{Sp: spanTo(start, p.span()), Elements: elems}, nil
}

// parseBlockOrMap disambiguates `{ key: value, ... }` (a Map literal)
// from `{ stmt NEWLINE stmt }` (a Block) by looking one token past `{`: an
// IDENT or STRING immediately followed by ':' starts a map.
func (p *Parser) parseBlockOrMap(start ast.Span) (ast.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	if (p.cur.Type == lexer.IDENT || p.cur.Type == lexer.STRING) && p.peek.Type == lexer.COLON {
		return p.parseMapLit(start)
	}
	var stmts []ast.Node
	for p.cur.Type != lexer.RBRACE {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return &ast.Block{Sp: spanTo(start, p.span()), Children: stmts}, nil
}

func (p *Parser) parseMapLit(start ast.Span) (ast.Node, error) {
	var entries []ast.MapEntry
	for p.cur.Type != lexer.RBRACE {
		key := p.cur.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON, "':'"); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.MapEntry{Key: key, Value: val})
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.skipNewlines(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return &ast.MapLit{Sp: spanTo(start, p.span()), Entries: entries}, nil
}

func (p *Parser) parseFunctionLit(start ast.Span) (ast.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var params []string
	for p.cur.Type != lexer.PIPE {
		if p.cur.Type != lexer.IDENT {
			return nil, langerr.NewRuntime(p.span(), "expected parameter name, got %q", p.cur.Lexeme)
		}
		params = append(params, p.cur.Lexeme)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.PIPE, "'|'"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionLit{Sp: spanTo(start, p.span()), Params: params, Body: body}, nil
}

func (p *Parser) parseIf(start ast.Span) (ast.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Sp: spanTo(start, p.span()), Cond: cond, Then: then}
	if p.cur.Type == lexer.IDENT && p.cur.Lexeme == "else" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.IF {
			if err := p.advance(); err != nil {
				return nil, err
			}
			econd, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			ethen, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			node.ElseIf = &ast.ElseIf{Cond: econd, Then: ethen}
			if p.cur.Type == lexer.IDENT && p.cur.Lexeme == "else" {
				if err := p.advance(); err != nil {
					return nil, err
				}
				els, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				node.Else = els
			}
		} else {
			els, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			node.Else = els
		}
	}
	return node, nil
}

// parseFor parses `for a, b in r1, r2 if cond yield body`.
func (p *Parser) parseFor(start ast.Span) (ast.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []string
	for {
		if p.cur.Type != lexer.IDENT {
			return nil, langerr.NewRuntime(p.span(), "expected loop variable, got %q", p.cur.Lexeme)
		}
		args = append(args, p.cur.Lexeme)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.IN, "'in'"); err != nil {
		return nil, err
	}
	var ranges []ast.Node
	for {
		r, err := p.parseRange()
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	var cond ast.Node
	if p.cur.Type == lexer.IF {
		if err := p.advance(); err != nil {
			return nil, err
		}
		c, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if err := p.expect(lexer.YIELD, "'yield'"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.For{Sp: spanTo(start, p.span()), Args: args, Ranges: ranges, Condition: cond, Body: body}, nil
}

func (p *Parser) parseIdentOrCall(start ast.Span) (ast.Node, error) {
	path := []string{p.cur.Lexeme}
	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.DOT {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.IDENT {
			return nil, langerr.NewRuntime(p.span(), "expected identifier after '.', got %q", p.cur.Lexeme)
		}
		path = append(path, p.cur.Lexeme)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	id := &ast.Id{Sp: spanTo(start, p.span()), Path: path}
	if p.cur.Type != lexer.LPAREN {
		return id, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []ast.Node
	for p.cur.Type != lexer.RPAREN {
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return &ast.Call{Sp: spanTo(start, p.span()), Callee: id, Args: args}, nil
}
