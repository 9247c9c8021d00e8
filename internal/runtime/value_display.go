package runtime

import (
	"strconv"
	"strings"

	"github.com/lumen-lang/lumen/internal/langerr"
	"github.com/lumen-lang/lumen/internal/ast"
)

// ToString renders v the way the language surface displays it
// (`to_string`, REPL echoing). List and Map rendering
// detects cycles through seen, since both are reference-shared and can
// be made self-referential by user code.
func ToString(span ast.Span, v Value) (string, error) {
	var b strings.Builder
	if err := writeValue(span, &b, v, make(map[Value]bool)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeValue(span ast.Span, b *strings.Builder, v Value, seen map[Value]bool) error {
	switch vv := v.(type) {
	case Empty:
		b.WriteString("()")
	case Bool:
		if vv {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(formatNumber(float64(vv)))
	case Vec4:
		b.WriteString("(")
		b.WriteString(formatNumber(vv.X))
		b.WriteString(", ")
		b.WriteString(formatNumber(vv.Y))
		b.WriteString(", ")
		b.WriteString(formatNumber(vv.Z))
		b.WriteString(", ")
		b.WriteString(formatNumber(vv.W))
		b.WriteString(")")
	case *Str:
		b.WriteString(vv.Value)
	case Range:
		b.WriteString(strconv.FormatInt(vv.Min, 10))
		b.WriteString("..")
		b.WriteString(strconv.FormatInt(vv.Max, 10))
	case *List:
		if seen[v] {
			return langerr.NewRuntime(span, langerr.MsgCycleDetected)
		}
		seen[v] = true
		defer delete(seen, v)
		b.WriteByte('[')
		for i, e := range vv.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := writeValue(span, b, e, seen); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case *Map:
		if seen[v] {
			return langerr.NewRuntime(span, langerr.MsgCycleDetected)
		}
		seen[v] = true
		defer delete(seen, v)
		b.WriteByte('{')
		for i, k := range vv.keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			val, _ := vv.Get(k)
			if err := writeValue(span, b, val, seen); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	case *Function:
		b.WriteString("function")
	case *External:
		b.WriteString("External(")
		b.WriteString(vv.TypeName())
		b.WriteByte(')')
	case *ForSpec:
		b.WriteString("for")
	default:
		b.WriteString(string(v.Kind()))
	}
	return nil
}

// formatNumber matches the language's integer/float distinction: a
// Number with no fractional part prints without a decimal point.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
