// Package config loads solver settings from YAML.
//
// Resolution order, later wins:
//
//  1. Default()
//  2. the preset named by the "preset" key (quick_test, standard_benchmark,
//     intensive_search)
//  3. every key present in the document
//
// Durations are written as Go duration strings ("90s", "30m"). The result is
// checked with go-playground/validator struct tags; any failure wraps
// ErrInvalidConfig. ExactOptions and HeuristicOptions map a Config onto the
// solver option structs; monitors and loggers are attached by the caller.
package config
