package config

import (
	"strconv"
	"strings"
)

// parseEffectList parses the `{ name, name(args), ... }` grammar shared
// by structParams and attrParams. For structParams (isAttr=false) a
// call's single argument is `λ=value`; for attrParams (isAttr=true) the
// call's arguments are positional: an attribute name, then optionally a
// λ value.
func parseEffectList(raw string, isAttr bool) ([]EffectParam, error) {
	body, err := bracesBody(raw)
	if err != nil {
		return nil, err
	}

	var params []EffectParam
	for _, part := range splitTopLevel(body, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, inner, hasCall, err := splitCall(part)
		if err != nil {
			return nil, err
		}

		p := EffectParam{Name: name}
		if hasCall {
			args := splitTopLevel(inner, ',')
			if isAttr {
				if err := applyAttrArgs(&p, args); err != nil {
					return nil, err
				}
			} else {
				if err := applyStructArgs(&p, args); err != nil {
					return nil, err
				}
			}
		}
		params = append(params, p)
	}

	return params, nil
}

func applyStructArgs(p *EffectParam, args []string) error {
	for _, a := range args {
		a = strings.TrimSpace(a)
		idx := strings.Index(a, "=")
		if idx < 0 {
			return ErrMalformedCall
		}
		key := strings.TrimSpace(a[:idx])
		if key != "λ" && key != "lambda" {
			return ErrMalformedCall
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(a[idx+1:]), 64)
		if err != nil {
			return ErrMalformedCall
		}
		p.Lambda = v
		p.HasLambda = true
	}

	return nil
}

func applyAttrArgs(p *EffectParam, args []string) error {
	for i, a := range args {
		a = strings.TrimSpace(a)
		if i == 0 {
			p.AttrName = a

			continue
		}
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return ErrMalformedCall
		}
		p.Lambda = v
		p.HasLambda = true
	}

	return nil
}

// bracesBody strips the outermost `{` and `}` from raw.
func bracesBody(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		return "", ErrUnbalancedBraces
	}

	return raw[1 : len(raw)-1], nil
}

// splitTopLevel splits s on sep, ignoring occurrences of sep that fall
// inside balanced parentheses.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])

	return parts
}

// splitCall splits "name" or "name(inner)" into its name and inner parts.
func splitCall(s string) (name, inner string, hasCall bool, err error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return strings.TrimSpace(s), "", false, nil
	}
	if !strings.HasSuffix(s, ")") {
		return "", "", false, ErrMalformedCall
	}

	return strings.TrimSpace(s[:open]), s[open+1 : len(s)-1], true, nil
}
