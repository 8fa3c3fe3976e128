/*
File    : twig/env/env.go
*/

// Package env implements Twig's lexical environments: scope frames
// chained by a parent pointer, created on block entry and function call,
// and released on exit. Closures hold a pointer to the environment that
// was current at their declaration site — never a copy — so that a
// variable mutated through one closure is visible through any other
// closure sharing the same frame (spec.md section 9: "Never copy
// environments by value").
package env

import "github.com/twiglang/twig/value"

// Environment is a single scope frame.
type Environment struct {
	values map[string]value.Value
	parent *Environment
}

// New creates a scope frame whose enclosing scope is parent (nil for
// the global scope).
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), parent: parent}
}

// Define binds name to v in this frame, shadowing any binding of the
// same name in an enclosing frame. Used for `var` declarations and for
// binding function parameters at call time.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name starting in this frame and walking outward. The
// bool result is false if no frame in the chain binds name.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Assign updates the existing binding for name in the frame where it was
// declared, searching outward from this frame. It never creates a new
// binding — assigning to an undefined name is the caller's error to
// report (spec.md section 4.4: "it never creates a new binding at
// assignment time"). The bool result is false if name is not bound
// anywhere in the chain.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, v)
	}
	return false
}

// Ancestor walks distance frames up the parent chain. The resolver
// guarantees (spec.md section 8) that for any distance it records, the
// ancestor at that distance exists and binds the name being resolved.
func (e *Environment) Ancestor(distance int) *Environment {
	frame := e
	for i := 0; i < distance; i++ {
		frame = frame.parent
	}
	return frame
}

// GetAt reads name from the frame exactly distance scopes up, bypassing
// the walk-outward search Get performs. Used by the evaluator when the
// resolver has already computed a distance for a Variable/Assign node.
func (e *Environment) GetAt(distance int, name string) (value.Value, bool) {
	v, ok := e.Ancestor(distance).values[name]
	return v, ok
}

// AssignAt writes name in the frame exactly distance scopes up.
func (e *Environment) AssignAt(distance int, name string, v value.Value) {
	e.Ancestor(distance).values[name] = v
}
