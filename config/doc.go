// Package config parses the key/value configuration text format of
// spec.md §6: scalar keys in `name = value` form, plus two keys
// (`structParams`, `attrParams`) whose value is a brace-delimited,
// comma-separated list of bare names or `name(args)` calls. No library
// in the retrieval pack models this exact nested-call grammar (it is not
// valid YAML, JSON, or TOML), so this is a hand-written scanner — see
// DESIGN.md for why that is the justified exception rather than a
// default.
package config
