package script

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/okranz/collider/physics"
	"github.com/okranz/collider/prefabs"
)

// Hooks runs a compiled tengo script against collision events. The script
// must define two functions:
//
//	onCollision := func(a, b, overlap_x, overlap_y, trigger) { ... }
//	onTriggerEnter := func(a, b) { ... }
//
// and may use the `engine` global (bound bridge functions) and the
// `state` global (a map that persists across dispatches).
type Hooks struct {
	compiled *tengo.Compiled
	state    *tengo.Map
	world    *physics.World
}

// eventDispatch is appended to every hook script. Each dispatch sets the
// __ globals and reruns the script, so top-level code runs every event;
// scripts keep per-run state in `state`, which persists.
const eventDispatch = `
if __event == "collision" {
	onCollision(__a, __b, __overlap_x, __overlap_y, __trigger)
} else if __event == "trigger_enter" {
	onTriggerEnter(__a, __b)
}
`

// Compile builds hooks from script source. The script is run once with no
// event pending to verify it compiles and defines both handlers.
func Compile(src []byte) (*Hooks, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), []byte("\n"+eventDispatch)...))
	_ = script.Add("__event", "")
	_ = script.Add("__a", 0)
	_ = script.Add("__b", 0)
	_ = script.Add("__overlap_x", 0.0)
	_ = script.Add("__overlap_y", 0.0)
	_ = script.Add("__trigger", false)
	_ = script.Add("engine", map[string]any{})
	_ = script.Add("state", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}

	h := &Hooks{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}
	if err := h.run(); err != nil {
		return nil, fmt.Errorf("script: init run: %w", err)
	}
	for _, fn := range []string{"onCollision", "onTriggerEnter"} {
		if !compiled.IsDefined(fn) {
			return nil, fmt.Errorf("script: missing %s handler", fn)
		}
	}
	return h, nil
}

// Load compiles the named hook script from the prefabs store.
func Load(name string) (*Hooks, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(src)
}

// Bind points the engine bridge at a collision world and installs the
// world's collision and trigger-enter callbacks to dispatch into the
// script. Callers that route events themselves (through an event queue)
// use BindEngine plus OnCollision/OnTriggerEnter instead.
func (h *Hooks) Bind(w *physics.World) {
	if h == nil || w == nil {
		return
	}
	h.BindEngine(w)
	w.SetCollisionCallback(h.OnCollision)
	w.SetTriggerEnterCallback(h.OnTriggerEnter)
}

// BindEngine rebuilds the `engine` bridge against a world without touching
// the world's callbacks.
func (h *Hooks) BindEngine(w *physics.World) {
	if h == nil {
		return
	}
	h.world = w
	if err := h.compiled.Set("engine", h.engineBridge()); err != nil {
		log.Printf("script: set engine bridge: %v", err)
	}
}

// OnCollision dispatches one solid overlap into the script. Script errors
// are logged and swallowed; a broken hook never stops the frame.
func (h *Hooks) OnCollision(info physics.CollisionInfo) {
	if h == nil {
		return
	}
	h.set("__a", int64(info.EntityA))
	h.set("__b", int64(info.EntityB))
	h.set("__overlap_x", info.OverlapX)
	h.set("__overlap_y", info.OverlapY)
	h.set("__trigger", info.IsTrigger)
	h.dispatch("collision")
}

// OnTriggerEnter dispatches one trigger overlap into the script.
func (h *Hooks) OnTriggerEnter(a, b physics.EntityID) {
	if h == nil {
		return
	}
	h.set("__a", int64(a))
	h.set("__b", int64(b))
	h.dispatch("trigger_enter")
}

// Var returns the current value of a script global, converted to plain Go
// values. Handy for tests and debug overlays.
func (h *Hooks) Var(name string) any {
	if h == nil || h.compiled == nil {
		return nil
	}
	v := h.compiled.Get(name)
	if v == nil {
		return nil
	}
	return v.Value()
}

func (h *Hooks) dispatch(event string) {
	h.set("__event", event)
	if err := h.run(); err != nil {
		log.Printf("script: %s hook: %v", event, err)
	}
	h.set("__event", "")
}

func (h *Hooks) run() error {
	if h == nil || h.compiled == nil {
		return fmt.Errorf("nil hooks")
	}
	if err := h.compiled.Set("state", h.state); err != nil {
		return err
	}
	return h.compiled.Run()
}

func (h *Hooks) set(name string, v any) {
	if err := h.compiled.Set(name, v); err != nil {
		log.Printf("script: set %s: %v", name, err)
	}
}

func (h *Hooks) engineBridge() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		log.Printf("script: %s", objectAsString(args[0]))
		return tengo.UndefinedValue, nil
	}}

	values["has_collider"] = &tengo.UserFunction{Name: "has_collider", Value: func(args ...tengo.Object) (tengo.Object, error) {
		id, ok := objectAsID(args)
		if !ok || h.world == nil || !h.world.HasCollider(id) {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["remove_collider"] = &tengo.UserFunction{Name: "remove_collider", Value: func(args ...tengo.Object) (tengo.Object, error) {
		id, ok := objectAsID(args)
		if !ok || h.world == nil {
			return tengo.FalseValue, nil
		}
		h.world.RemoveCollider(id)
		return tengo.TrueValue, nil
	}}

	values["set_layer_enabled"] = &tengo.UserFunction{Name: "set_layer_enabled", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 || h.world == nil {
			return tengo.FalseValue, nil
		}
		l1, err1 := prefabs.ParseLayer(objectAsString(args[0]))
		l2, err2 := prefabs.ParseLayer(objectAsString(args[1]))
		if err1 != nil || err2 != nil {
			return tengo.FalseValue, nil
		}
		h.world.SetLayerCollisionEnabled(l1, l2, !args[2].IsFalsy())
		return tengo.TrueValue, nil
	}}

	values["layer_enabled"] = &tengo.UserFunction{Name: "layer_enabled", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 || h.world == nil {
			return tengo.FalseValue, nil
		}
		l1, err1 := prefabs.ParseLayer(objectAsString(args[0]))
		l2, err2 := prefabs.ParseLayer(objectAsString(args[1]))
		if err1 != nil || err2 != nil {
			return tengo.FalseValue, nil
		}
		if h.world.IsLayerCollisionEnabled(l1, l2) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsID(args []tengo.Object) (physics.EntityID, bool) {
	if len(args) < 1 {
		return 0, false
	}
	n, ok := args[0].(*tengo.Int)
	if !ok || n.Value < 0 {
		return 0, false
	}
	return physics.EntityID(n.Value), true
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
