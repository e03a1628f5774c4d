package vm

import "github.com/sgkim126/txexec/core"

// Script is a hand-authored stand-in for a piece of compiled byte-code: it
// receives the same Externalities a real interpreter would and returns the
// frame's VmResult. Tests use it to script the handful of behaviors the
// executive must dispatch correctly (storage writes, self-destructs,
// nested calls, reverts) without depending on a full EVM interpreter,
// which is an external collaborator (§1).
type Script func(ext *Externalities) (VmResult, error)

// ScriptedVM is a VM implementation that looks up a Script by the code
// address being executed. It is the executive test suite's stand-in for
// the VM factory/interpreter collaborator of §6.
type ScriptedVM struct {
	scripts map[core.Address]Script
	// Default runs when no script is registered for the frame's
	// code address; by default it succeeds consuming no gas, matching the
	// empty-recipient behavior of the real pipeline before a VM is even
	// invoked.
	Default Script
}

// NewScriptedVM returns a VM with no registered scripts.
func NewScriptedVM() *ScriptedVM {
	return &ScriptedVM{scripts: make(map[core.Address]Script)}
}

// Register installs script as the behavior of code deployed at addr.
func (v *ScriptedVM) Register(addr core.Address, script Script) {
	v.scripts[addr] = script
}

func (v *ScriptedVM) Exec(params core.ActionParams, ext *Externalities) (VmResult, error) {
	if script, ok := v.scripts[params.CodeAddress]; ok {
		return script(ext)
	}
	if v.Default != nil {
		return v.Default(ext)
	}
	return VmResult{GasLeft: params.Gas}, nil
}

// ScriptedFactory adapts a single ScriptedVM into a Factory, so it can be
// wired into an Engine that expects one VM instance per configuration.
type ScriptedFactory struct {
	VM *ScriptedVM
}

func (f *ScriptedFactory) NewVM() VM { return f.VM }
