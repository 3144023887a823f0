package script

import (
	"fmt"

	"github.com/dop251/goja"

	"tessera/pkg/component"
)

// Static is a fixed text value.
type Static string

func (s Static) String() string { return string(s) }

func (s Static) Bool() bool { return s != "" && s != "false" }

// Program is a compiled script expression bound as a node value. It is
// re-evaluated on every read, so layout passes observe live script state.
type Program struct {
	e    *Engine
	prog *goja.Program
	name string
}

var _ component.Value = (*Program)(nil)

// Value compiles an expression into a dynamic node value.
func (e *Engine) Value(name, src string) (*Program, error) {
	prog, err := goja.Compile(name, src, true)
	if err != nil {
		return nil, fmt.Errorf("value %s: %w", name, err)
	}
	return &Program{e: e, prog: prog, name: name}, nil
}

func (p *Program) String() string {
	v, err := p.e.vm.RunProgram(p.prog)
	if err != nil {
		p.e.log.Error().Err(err).Str("value", p.name).Msg("value script failed")
		return ""
	}
	return v.String()
}

func (p *Program) Bool() bool {
	v, err := p.e.vm.RunProgram(p.prog)
	if err != nil {
		p.e.log.Error().Err(err).Str("value", p.name).Msg("value script failed")
		return false
	}
	return v.ToBoolean()
}
