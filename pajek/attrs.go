package pajek

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/networkee/ergmee/attr"
)

// isNAToken reports whether a field is the case-insensitive "NA" missing
// sentinel spec.md §6 defines.
func isNAToken(field string) bool {
	return strings.EqualFold(field, "NA")
}

// readAttributeTable parses the shared whitespace-separated table format:
// a header line of attribute names, then one line per node with one field
// per attribute. Returns the header and, for each node in file order, its
// row of raw fields.
func readAttributeTable(r io.Reader) (header []string, rows [][]string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		header = strings.Fields(line)

		break
	}
	if header == nil {
		return nil, nil, nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != len(header) {
			return nil, nil, fmt.Errorf("%w: row %q has %d fields, header has %d", ErrAttributeFieldMismatch, line, len(fields), len(header))
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return header, rows, nil
}

func checkRowCount(rows [][]string, n int) error {
	if len(rows) != n {
		return fmt.Errorf("%w: got %d rows, want %d", ErrAttributeCountMismatch, len(rows), n)
	}

	return nil
}

// ReadBinaryAttrs parses a binattrFile stream and registers each column as
// a Binary attribute in store.
func ReadBinaryAttrs(r io.Reader, store *attr.Store, n int) error {
	header, rows, err := readAttributeTable(r)
	if err != nil || header == nil {
		return err
	}
	if err := checkRowCount(rows, n); err != nil {
		return err
	}

	for col, name := range header {
		values := make([]int8, n)
		na := make([]bool, n)
		for i, row := range rows {
			field := row[col]
			if isNAToken(field) {
				na[i] = true

				continue
			}
			v, err := strconv.ParseInt(field, 10, 8)
			if err != nil {
				return fmt.Errorf("%w: attribute %q row %d: %v", ErrMalformedLine, name, i, err)
			}
			values[i] = int8(v)
		}
		if err := store.AddBinary(name, values, na); err != nil {
			return err
		}
	}

	return nil
}

// ReadCategoricalAttrs parses a catattrFile stream and registers each
// column as a Categorical attribute in store.
func ReadCategoricalAttrs(r io.Reader, store *attr.Store, n int) error {
	header, rows, err := readAttributeTable(r)
	if err != nil || header == nil {
		return err
	}
	if err := checkRowCount(rows, n); err != nil {
		return err
	}

	for col, name := range header {
		values := make([]int, n)
		na := make([]bool, n)
		for i, row := range rows {
			field := row[col]
			if isNAToken(field) {
				na[i] = true

				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return fmt.Errorf("%w: attribute %q row %d: %v", ErrMalformedLine, name, i, err)
			}
			values[i] = v
		}
		if err := store.AddCategorical(name, values, na); err != nil {
			return err
		}
	}

	return nil
}

// ReadContinuousAttrs parses a contattrFile stream and registers each
// column as a Continuous attribute in store.
func ReadContinuousAttrs(r io.Reader, store *attr.Store, n int) error {
	header, rows, err := readAttributeTable(r)
	if err != nil || header == nil {
		return err
	}
	if err := checkRowCount(rows, n); err != nil {
		return err
	}

	for col, name := range header {
		values := make([]float64, n)
		na := make([]bool, n)
		for i, row := range rows {
			field := row[col]
			if isNAToken(field) {
				na[i] = true

				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return fmt.Errorf("%w: attribute %q row %d: %v", ErrMalformedLine, name, i, err)
			}
			values[i] = v
		}
		if err := store.AddContinuous(name, values, na); err != nil {
			return err
		}
	}

	return nil
}

// ReadSetAttrs parses a setattrFile stream and registers each column as a
// Set attribute in store. A field is a comma-separated list of
// non-negative integers, or the token `none` for the empty set, or `NA`
// for missing.
func ReadSetAttrs(r io.Reader, store *attr.Store, n int) error {
	header, rows, err := readAttributeTable(r)
	if err != nil || header == nil {
		return err
	}
	if err := checkRowCount(rows, n); err != nil {
		return err
	}

	for col, name := range header {
		values := make([][]int, n)
		na := make([]bool, n)
		for i, row := range rows {
			field := row[col]
			switch {
			case isNAToken(field):
				na[i] = true
			case strings.EqualFold(field, "none"):
				values[i] = nil
			default:
				parts := strings.Split(field, ",")
				set := make([]int, 0, len(parts))
				for _, p := range parts {
					v, err := strconv.Atoi(strings.TrimSpace(p))
					if err != nil || v < 0 {
						return fmt.Errorf("%w: attribute %q row %d: %q", ErrMalformedLine, name, i, field)
					}
					set = append(set, v)
				}
				sort.Ints(set)
				values[i] = set
			}
		}
		if err := store.AddSet(name, values, na); err != nil {
			return err
		}
	}

	return nil
}
