package stdlib

import (
	"fmt"
	"sort"

	"github.com/lumen-lang/lumen/internal/langerr"
	"github.com/lumen-lang/lumen/internal/runtime"
)

// fromGo converts a value decoded by encoding/json or yaml.v3 into the
// runtime's value universe. Integral floats become Number the same way
// every other numeric literal does; there is no separate integer kind
// to preserve.
func fromGo(data any) (runtime.Value, error) {
	switch v := data.(type) {
	case nil:
		return runtime.Empty{}, nil
	case bool:
		return runtime.Bool(v), nil
	case int:
		return runtime.Number(v), nil
	case int64:
		return runtime.Number(v), nil
	case float64:
		return runtime.Number(v), nil
	case string:
		return runtime.NewStr(v), nil
	case []any:
		elems := make([]runtime.Value, len(v))
		for i, item := range v {
			ev, err := fromGo(item)
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return runtime.NewList(elems), nil
	case map[string]any:
		m := runtime.NewMap()
		for _, k := range sortedKeys(v) {
			ev, err := fromGo(v[k])
			if err != nil {
				return nil, err
			}
			m.Set(k, ev)
		}
		return m, nil
	case map[any]any:
		m := runtime.NewMap()
		for k, val := range v {
			ev, err := fromGo(val)
			if err != nil {
				return nil, err
			}
			m.Set(fmt.Sprintf("%v", k), ev)
		}
		return m, nil
	default:
		return nil, langerr.NewRuntime(zeroSpan, "cannot represent decoded value of type %T", data)
	}
}

// toGo converts a runtime Value back into plain Go data suitable for
// encoding/json or yaml.v3 marshaling. Function, External, and Iterator
// values have no serialized form.
func toGo(v runtime.Value) (any, error) {
	switch vv := v.(type) {
	case runtime.Empty:
		return nil, nil
	case runtime.Bool:
		return bool(vv), nil
	case runtime.Number:
		return float64(vv), nil
	case *runtime.Str:
		return vv.Value, nil
	case *runtime.List:
		out := make([]any, len(vv.Elements))
		for i, e := range vv.Elements {
			gv, err := toGo(e)
			if err != nil {
				return nil, err
			}
			out[i] = gv
		}
		return out, nil
	case *runtime.Map:
		out := make(map[string]any, vv.Len())
		for _, k := range vv.Keys() {
			val, _ := vv.Get(k)
			gv, err := toGo(val)
			if err != nil {
				return nil, err
			}
			out[k] = gv
		}
		return out, nil
	default:
		return nil, langerr.NewType(zeroSpan, "value of type %s cannot be serialized", v.TypeName())
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
