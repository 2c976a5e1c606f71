package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a spec.md §6 configuration text stream into a Config,
// applying Validate before returning.
func Parse(r io.Reader) (*Config, error) {
	statements, err := scanStatements(r)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	for _, st := range statements {
		if err := c.apply(st.key, st.value); err != nil {
			return nil, fmt.Errorf("config: key %q: %w", st.key, err)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

type statement struct {
	key   string
	value string
}

// scanStatements splits the input into `key = value` statements. A value
// containing an unbalanced `{` continues accumulating subsequent lines
// until its braces close — the only multi-line construct the grammar
// allows (structParams/attrParams lists long enough to wrap).
func scanStatements(r io.Reader) ([]statement, error) {
	scanner := bufio.NewScanner(r)
	var statements []statement
	var pendingKey string
	var pendingValue strings.Builder
	depth := 0

	flush := func() {
		if pendingKey != "" {
			statements = append(statements, statement{key: pendingKey, value: strings.TrimSpace(pendingValue.String())})
		}
		pendingKey = ""
		pendingValue.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if depth == 0 {
			idx := strings.Index(line, "=")
			if idx < 0 {
				return nil, fmt.Errorf("%w: no '=' in line %q", ErrBadValue, line)
			}
			flush()
			pendingKey = strings.TrimSpace(line[:idx])
			line = line[idx+1:]
		} else {
			pendingValue.WriteByte(' ')
		}

		depth += strings.Count(line, "{") - strings.Count(line, "}")
		pendingValue.WriteString(line)

		if depth < 0 {
			return nil, ErrUnbalancedBraces
		}
		if depth == 0 {
			flush()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if depth != 0 {
		return nil, ErrUnbalancedBraces
	}
	flush()

	return statements, nil
}

func (c *Config) apply(key, value string) error {
	switch key {
	case "useIFDsampler":
		return setBool(&c.UseIFDSampler, value)
	case "useTNTsampler":
		return setBool(&c.UseTNTSampler, value)
	case "useBorisenkoUpdate":
		return setBool(&c.UseBorisenkoUpdate, value)
	case "allowLoops":
		return setBool(&c.AllowLoops, value)
	case "forbidReciprocity":
		return setBool(&c.ForbidReciprocity, value)
	case "isBipartite":
		return setBool(&c.IsBipartite, value)
	case "isDirected":
		return setBool(&c.IsDirected, value)
	case "debugAssertCache":
		return setBool(&c.DebugAssertCache, value)
	case "ACA_S":
		return setFloat(&c.ACAS, value)
	case "ACA_EE":
		return setFloat(&c.ACAEE, value)
	case "compC":
		return setFloat(&c.CompC, value)
	case "ifd_K":
		return setFloat(&c.IFDK, value)
	case "samplerSteps":
		return setInt(&c.SamplerSteps, value)
	case "Ssteps":
		return setInt(&c.Ssteps, value)
	case "EEsteps":
		return setInt(&c.EEsteps, value)
	case "EEinnerSteps":
		return setInt(&c.EEInnerSteps, value)
	case "burnin":
		return setInt(&c.Burnin, value)
	case "interval":
		return setInt(&c.Interval, value)
	case "sampleSize":
		return setInt(&c.SampleSize, value)
	case "numNodes":
		return setInt(&c.NumNodes, value)
	case "numArcs":
		return setInt(&c.NumArcs, value)
	case "maxCachedPower":
		return setInt(&c.MaxCachedPower, value)
	case "arclistFile":
		c.ArclistFile = unquote(value)
	case "binattrFile":
		c.BinattrFile = unquote(value)
	case "catattrFile":
		c.CatattrFile = unquote(value)
	case "contattrFile":
		c.ContattrFile = unquote(value)
	case "setattrFile":
		c.SetattrFile = unquote(value)
	case "termFile":
		c.TermFile = unquote(value)
	case "thetaFilePrefix":
		c.ThetaFilePrefix = unquote(value)
	case "dzAFilePrefix":
		c.DzAFilePrefix = unquote(value)
	case "simNetFilePrefix":
		c.SimNetFilePrefix = unquote(value)
	case "statsFile":
		c.StatsFile = unquote(value)
	case "observedStatsFilePrefix":
		c.ObservedStatsFilePrefix = unquote(value)
	case "structParams":
		params, err := parseEffectList(value, false)
		if err != nil {
			return err
		}
		c.StructParams = params
	case "attrParams":
		params, err := parseEffectList(value, true)
		if err != nil {
			return err
		}
		c.AttrParams = params
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	return nil
}

func unquote(v string) string {
	return strings.Trim(strings.TrimSpace(v), `"`)
}

func setBool(dst *bool, value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		*dst = true
	case "false", "0", "no":
		*dst = false
	default:
		return fmt.Errorf("%w: %q is not a bool", ErrBadValue, value)
	}

	return nil
}

func setFloat(dst *float64, value string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadValue, err)
	}
	*dst = v

	return nil
}

func setInt(dst *int, value string) error {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadValue, err)
	}
	*dst = v

	return nil
}
