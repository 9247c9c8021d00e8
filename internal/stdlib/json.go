package stdlib

import (
	"encoding/json"

	"github.com/lumen-lang/lumen/internal/langerr"
	"github.com/lumen-lang/lumen/internal/runtime"
)

func registerJSON(reg *runtime.Registry) {
	reg.Register([]string{"decode"}, jsonDecode)
	reg.Register([]string{"encode"}, jsonEncode)
}

// jsonDecode parses a JSON document into Lumen values: objects become
// Map, arrays become List, and scalars become Bool/Number/Str/Empty.
func jsonDecode(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "json.decode", 1, len(args))
	}
	s, ok := args[0].(*runtime.Str)
	if !ok {
		return nil, langerr.NewType(zeroSpan, langerr.MsgTypeMismatch, "json.decode", "Str", args[0].TypeName())
	}
	var data any
	if err := json.Unmarshal([]byte(s.Value), &data); err != nil {
		return nil, langerr.NewRuntime(zeroSpan, "json decode error: %v", err)
	}
	return fromGo(data)
}

// jsonEncode renders a Lumen value as a JSON document.
func jsonEncode(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "json.encode", 1, len(args))
	}
	data, err := toGo(args[0])
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(data)
	if err != nil {
		return nil, langerr.NewRuntime(zeroSpan, "json encode error: %v", err)
	}
	return runtime.NewStr(string(out)), nil
}
