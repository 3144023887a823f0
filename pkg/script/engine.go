// Package script embeds a JavaScript engine for dynamic interface content:
// bound values re-evaluated each frame and trigger handlers written in JS.
package script

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"
	"github.com/rs/zerolog"

	"tessera/pkg/component"
)

// Engine executes JavaScript against a component tree. An engine is bound to
// at most one interface and must be used from the interface's goroutine.
type Engine struct {
	vm  *goja.Runtime
	log zerolog.Logger
}

// New creates an engine with a fresh goja runtime and a console API routed
// to the logger.
func New(log zerolog.Logger) *Engine {
	e := &Engine{vm: goja.New(), log: log}
	e.registerConsole()
	return e
}

// Bind exposes the interface tree to scripts as the global `ui` object.
func (e *Engine) Bind(ui *component.Interface) {
	obj := e.vm.NewObject()
	obj.Set("byId", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		n := findByID(ui.Root(), call.Arguments[0].String())
		if n == nil {
			return goja.Null()
		}
		return e.nodeProxy(n)
	})
	e.vm.Set("ui", obj)
}

// nodeProxy wraps one node for script access. Proxies are built per call;
// scripts compare nodes by id, not object identity.
func (e *Engine) nodeProxy(n *component.Node) goja.Value {
	obj := e.vm.NewObject()
	obj.Set("id", n.ID())
	obj.Set("kind", n.Kind().String())
	obj.Set("text", func(goja.FunctionCall) goja.Value {
		return e.vm.ToValue(n.Text())
	})
	obj.Set("setText", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			n.SetText(call.Arguments[0].String())
		}
		return goja.Undefined()
	})
	obj.Set("addClass", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			n.AddClass(call.Arguments[0].String())
		}
		return goja.Undefined()
	})
	obj.Set("removeClass", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			n.RemoveClass(call.Arguments[0].String())
		}
		return goja.Undefined()
	})
	obj.Set("setState", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 1 {
			n.SetState(call.Arguments[0].String(), call.Arguments[1].ToBoolean())
		}
		return goja.Undefined()
	})
	return obj
}

func findByID(n *component.Node, id string) *component.Node {
	if n.ID() == id {
		return n
	}
	for _, c := range n.Children() {
		if hit := findByID(c, id); hit != nil {
			return hit
		}
	}
	return nil
}

// Run executes a script for its side effects.
func (e *Engine) Run(src string) error {
	if _, err := e.vm.RunString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// Trigger compiles a script into a component trigger handler. Handler errors
// are logged, not raised; a failed handler must not break the frame loop.
func (e *Engine) Trigger(name, src string) (component.TriggerFunc, error) {
	prog, err := goja.Compile(name, src, true)
	if err != nil {
		return nil, fmt.Errorf("trigger %s: %w", name, err)
	}
	return func(n *component.Node) {
		e.vm.Set("self", e.nodeProxy(n))
		if _, err := e.vm.RunProgram(prog); err != nil {
			e.log.Error().Err(err).Str("trigger", name).Msg("trigger script failed")
		}
	}, nil
}

func (e *Engine) registerConsole() {
	console := e.vm.NewObject()
	console.Set("log", func(call goja.FunctionCall) goja.Value {
		e.log.Info().Msg(formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		e.log.Warn().Msg(formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("error", func(call goja.FunctionCall) goja.Value {
		e.log.Error().Msg(formatArgs(call.Arguments))
		return goja.Undefined()
	})
	e.vm.Set("console", console)
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
