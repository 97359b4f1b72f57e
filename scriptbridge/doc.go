// Package scriptbridge connects a goja JavaScript runtime to a
// logpolicy.Policy.
//
// Install defines the global nativeLoggingHook(message, level) that
// bundled script code calls, with level 0 (trace) to 4 (fatal), and a
// console object mapping trace and debug to trace, log and info to
// info, warn to warn and error to error:
//
//	vm := goja.New()
//	if err := scriptbridge.Install(vm, policy); err != nil {
//	    return err
//	}
//	_, err := vm.RunString(`console.log("loaded", {modules: 3})`)
//
// Runtimes that use the goja_nodejs require registry can instead
// register a Printer with EnableConsole.
//
// Logging never throws into the script.
package scriptbridge
