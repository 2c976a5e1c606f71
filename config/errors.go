package config

import "errors"

// ErrUnknownKey is returned for a key this package does not recognize.
var ErrUnknownKey = errors.New("config: unknown key")

// ErrBadValue is returned when a recognized key's value cannot be parsed
// as its expected type.
var ErrBadValue = errors.New("config: malformed value")

// ErrContradictoryFlags is returned when structural flags conflict (e.g.
// both useIFDsampler and useTNTsampler set true: the two samplers are
// mutually exclusive proposal strategies).
var ErrContradictoryFlags = errors.New("config: contradictory structural flags")

// ErrUnbalancedBraces is returned when a `{ ... }` list value never
// closes.
var ErrUnbalancedBraces = errors.New("config: unbalanced braces in list value")

// ErrMalformedCall is returned when a `name(args)` entry inside a list
// value has an unmatched parenthesis or an argument that cannot be parsed.
var ErrMalformedCall = errors.New("config: malformed name(args) entry")
