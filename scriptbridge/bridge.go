package scriptbridge

import (
	"strings"

	js "github.com/dop251/goja"
	"github.com/pkg/errors"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/logpolicy"
)

// HookName is the global function scripts call to log through the bridge.
const HookName = "nativeLoggingHook"

// Install defines nativeLoggingHook(message, level) and a console
// object on vm, both logging through p. A nil p logs through
// logpolicy.Default at call time.
func Install(vm *js.Runtime, p *logpolicy.Policy) error {
	b := &bridge{vm: vm, policy: p}

	if err := vm.Set(HookName, b.hook); err != nil {
		return errors.Wrapf(err, "define %s", HookName)
	}

	console := vm.NewObject()
	methods := []struct {
		name  string
		level core.Level
	}{
		{"trace", core.TraceLevel},
		{"debug", core.TraceLevel},
		{"log", core.InfoLevel},
		{"info", core.InfoLevel},
		{"warn", core.WarningLevel},
		{"error", core.ErrorLevel},
	}
	for _, m := range methods {
		if err := console.Set(m.name, b.consoleMethod(m.level)); err != nil {
			return errors.Wrapf(err, "define console.%s", m.name)
		}
	}
	if err := console.Set("assert", b.assert); err != nil {
		return errors.Wrap(err, "define console.assert")
	}
	if err := vm.Set("console", console); err != nil {
		return errors.Wrap(err, "define console")
	}
	return nil
}

type bridge struct {
	vm     *js.Runtime
	policy *logpolicy.Policy
}

func (b *bridge) log(level core.Level, message string) {
	p := b.policy
	if p == nil {
		p = logpolicy.Default()
	}
	p.LogScript(level, message)
}

func (b *bridge) enabled(level core.Level) bool {
	p := b.policy
	if p == nil {
		p = logpolicy.Default()
	}
	return p.Enabled(level)
}

// hook implements nativeLoggingHook(message, level). Missing levels log
// at info; out of range levels are clamped.
func (b *bridge) hook(call js.FunctionCall) js.Value {
	level := core.InfoLevel
	if lv := call.Argument(1); !js.IsUndefined(lv) && !js.IsNull(lv) {
		level = clampLevel(lv.ToInteger())
	}
	if !b.enabled(level) {
		return js.Undefined()
	}
	b.log(level, b.render(call.Argument(0)))
	return js.Undefined()
}

func (b *bridge) consoleMethod(level core.Level) func(js.FunctionCall) js.Value {
	return func(call js.FunctionCall) js.Value {
		if !b.enabled(level) {
			return js.Undefined()
		}
		b.log(level, b.join(call.Arguments))
		return js.Undefined()
	}
}

func (b *bridge) assert(call js.FunctionCall) js.Value {
	if call.Argument(0).ToBoolean() {
		return js.Undefined()
	}
	msg := "Assertion failed"
	if len(call.Arguments) > 1 {
		msg += ": " + b.join(call.Arguments[1:])
	}
	b.log(core.ErrorLevel, msg)
	return js.Undefined()
}

// join renders each argument and separates them with a single space
func (b *bridge) join(args []js.Value) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		return b.render(args[0])
	}
	var sb strings.Builder
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.render(a))
	}
	return sb.String()
}

// render turns a script value into text. Plain objects and arrays are
// rendered as JSON; functions, errors and values JSON cannot represent
// use their string conversion.
func (b *bridge) render(v js.Value) (s string) {
	if v == nil {
		return "undefined"
	}
	defer func() {
		if r := recover(); r != nil {
			s = "[unprintable]"
		}
	}()

	obj, ok := v.(*js.Object)
	if !ok {
		return v.String()
	}
	switch obj.ClassName() {
	case "Function", "Error", "Date", "RegExp":
		return v.String()
	}

	stringify, ok := js.AssertFunction(b.vm.Get("JSON").ToObject(b.vm).Get("stringify"))
	if !ok {
		return v.String()
	}
	out, err := stringify(js.Undefined(), v)
	if err != nil || js.IsUndefined(out) {
		return v.String()
	}
	return out.String()
}

func clampLevel(n int64) core.Level {
	switch {
	case n < int64(core.TraceLevel):
		return core.TraceLevel
	case n > int64(core.FatalLevel):
		return core.FatalLevel
	default:
		return core.Level(n)
	}
}
