package scriptbridge

import (
	js "github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/logpolicy"
)

// Printer is a goja_nodejs console printer that logs through a Policy.
type Printer struct {
	policy *logpolicy.Policy
}

var _ console.Printer = (*Printer)(nil)

// NewPrinter returns a Printer for p. A nil p logs through logpolicy.Default.
func NewPrinter(p *logpolicy.Policy) *Printer {
	return &Printer{policy: p}
}

func (pr *Printer) print(level core.Level, s string) {
	p := pr.policy
	if p == nil {
		p = logpolicy.Default()
	}
	p.LogScript(level, s)
}

// Log logs at info
func (pr *Printer) Log(s string) { pr.print(core.InfoLevel, s) }

// Warn logs at warn
func (pr *Printer) Warn(s string) { pr.print(core.WarningLevel, s) }

// Error logs at error
func (pr *Printer) Error(s string) { pr.print(core.ErrorLevel, s) }

// EnableConsole registers the goja_nodejs console module on registry with
// a Printer for p, enables require on vm and installs console as a global.
func EnableConsole(vm *js.Runtime, registry *require.Registry, p *logpolicy.Policy) {
	registry.RegisterNativeModule(console.ModuleName, console.RequireWithPrinter(NewPrinter(p)))
	registry.Enable(vm)
	console.Enable(vm)
}
