package stdlib

import (
	"github.com/lumen-lang/lumen/internal/langerr"
	"github.com/lumen-lang/lumen/internal/runtime"
	"gopkg.in/yaml.v3"
)

func registerYAML(reg *runtime.Registry) {
	reg.Register([]string{"decode"}, yamlDecode)
	reg.Register([]string{"encode"}, yamlEncode)
}

// yamlDecode parses a YAML document into Lumen values the same way
// json.decode does for JSON; yaml.v3 hands back map[string]any for
// mappings, so decoding reuses fromGo unchanged.
func yamlDecode(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "yaml.decode", 1, len(args))
	}
	s, ok := args[0].(*runtime.Str)
	if !ok {
		return nil, langerr.NewType(zeroSpan, langerr.MsgTypeMismatch, "yaml.decode", "Str", args[0].TypeName())
	}
	var data any
	if err := yaml.Unmarshal([]byte(s.Value), &data); err != nil {
		return nil, langerr.NewRuntime(zeroSpan, "yaml decode error: %v", err)
	}
	return fromGo(data)
}

// yamlEncode renders a Lumen value as a YAML document.
func yamlEncode(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "yaml.encode", 1, len(args))
	}
	data, err := toGo(args[0])
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return nil, langerr.NewRuntime(zeroSpan, "yaml encode error: %v", err)
	}
	return runtime.NewStr(string(out)), nil
}
