package stdlib

import (
	"github.com/google/uuid"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/langerr"
	"github.com/lumen-lang/lumen/internal/runtime"
)

func registerCore(reg *runtime.Registry) {
	reg.Register([]string{"type"}, coreType)
	reg.Register([]string{"version"}, coreVersion)
	reg.Register([]string{"uuid"}, coreUUID)
	reg.Register([]string{"object_id"}, coreObjectID)
}

// coreType reports the script-visible type name of its single argument,
// the dynamic-typing counterpart to a static type query.
func coreType(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "type", 1, len(args))
	}
	return runtime.NewStr(args[0].TypeName()), nil
}

// coreVersion reports the running distribution's version string.
func coreVersion(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	return runtime.NewStr(config.Version), nil
}

// coreUUID mints a fresh random identifier, for scripts that need to
// tag an External or a map entry with something unique.
func coreUUID(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 0 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "uuid", 0, len(args))
	}
	return runtime.NewStr(uuid.NewString()), nil
}

// coreObjectID reports the stamped instance id of an External or Map,
// for scripts that need to tell two structurally-equal instances apart
// (e.g. deduplicating a list of handles by identity rather than value).
func coreObjectID(ev *runtime.Evaluator, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, langerr.NewArity(zeroSpan, langerr.MsgArityMismatch, "object_id", 1, len(args))
	}
	switch v := args[0].(type) {
	case *runtime.External:
		return runtime.NewStr(v.ObjectID()), nil
	case *runtime.Map:
		return runtime.NewStr(v.ObjectID()), nil
	default:
		return nil, langerr.NewType(zeroSpan, langerr.MsgTypeMismatch, "object_id", "External or Map", v.TypeName())
	}
}
