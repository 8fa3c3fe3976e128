/*
File    : twig/stdlib/builtins.go
*/

// Package stdlib registers the handful of native functions the core
// language defines — currently just clock(), the only builtin spec.md
// names. Builtins is a slice, following the registration style of
// _examples/akashmaji946-go-mix/std/builtins.go, so a caller installs
// them into a fresh global environment with a single loop rather than
// the evaluator hardcoding each name.
//
// clock()'s arity check and millisecond-since-epoch return value are
// grounded on _examples/original_source/src/native_function.rs.
package stdlib

import (
	"fmt"
	"time"

	"github.com/twiglang/twig/value"
)

// Builtins lists every native function Twig programs can call without
// an import or declaration.
var Builtins = []*value.Native{
	{
		Name:  "clock",
		Arity: 0,
		Fn: func(args []value.Value) (value.Value, error) {
			if len(args) != 0 {
				return nil, fmt.Errorf("Expected 0 arguments but got %d.", len(args))
			}
			return value.Number{Value: float64(time.Now().UnixMilli())}, nil
		},
	},
}

// Install defines every builtin in the given global scope.
func Install(define func(name string, v value.Value)) {
	for _, b := range Builtins {
		define(b.Name, b)
	}
}
