package pajek

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/networkee/ergmee/core"
)

// ReadGraph parses a Pajek `.net` stream into a *core.Graph.
//
// Format, matched in order:
//  1. `*vertices N` or `*vertices N N_A` (the second form declares a
//     bipartite graph with N_A mode-A nodes).
//  2. Zero or more vertex declaration lines, ignored beyond the count they
//     occupy — this reader does not preserve Pajek vertex labels/coordinates.
//  3. Exactly one of `*arcs` (directed) or `*edges` (undirected), followed
//     by `i j` endpoint pairs, 1-based in the file.
//
// extraOpts, if given, are appended after the options ReadGraph infers
// from the file itself (directed/bipartite shape) — the one case this is
// needed for is WithLoops(), which nothing in the file header signals.
//
// ReadGraph never mutates a Config; callers that need the resulting graph's
// shape to agree with a parsed Config should compare g.Directed()/
// g.Bipartite() against it themselves.
func ReadGraph(r io.Reader, extraOpts ...core.GraphOption) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)

	n, modeA, err := readVerticesHeader(scanner)
	if err != nil {
		return nil, err
	}

	directed, edgeLines, err := skipToEdgeSection(scanner, n)
	if err != nil {
		return nil, err
	}

	opts := []core.GraphOption{}
	if directed {
		opts = append(opts, core.WithDirected())
	}
	if modeA > 0 {
		opts = append(opts, core.WithBipartite(modeA))
	}
	opts = append(opts, extraOpts...)
	g := core.NewGraph(n, opts...)

	for _, line := range edgeLines {
		i, j, err := parseEndpoints(line, n)
		if err != nil {
			return nil, err
		}
		if err := g.InsertEdge(i, j); err != nil {
			return nil, fmt.Errorf("pajek: inserting edge from line %q: %w", line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// readVerticesHeader consumes lines up to and including the `*vertices`
// header, returning the declared node count and (if present) the mode-A
// count.
func readVerticesHeader(scanner *bufio.Scanner) (n, modeA int, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if !strings.EqualFold(fields[0], "*vertices") {
			continue
		}
		if len(fields) < 2 {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		n, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		if len(fields) >= 3 {
			modeA, err = strconv.Atoi(fields[2])
			if err != nil {
				return 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
		}

		return n, modeA, nil
	}

	return 0, 0, ErrMissingVertices
}

// skipToEdgeSection consumes any vertex declaration lines and the
// `*arcs`/`*edges` header, returning whether the graph is directed and the
// raw endpoint-pair lines that follow (up to the next section header or
// EOF).
func skipToEdgeSection(scanner *bufio.Scanner, n int) (directed bool, lines []string, err error) {
	foundSection := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "*") {
			fields := strings.Fields(line)
			switch strings.ToLower(fields[0]) {
			case "*arcs":
				directed = true
				foundSection = true
			case "*edges":
				directed = false
				foundSection = true
			default:
				// *vertices continuation or another unrecognised
				// section (e.g. *vertexlabels): keep scanning.
				continue
			}
			if foundSection {
				break
			}
		}
		// A non-section, non-empty line before *arcs/*edges is a vertex
		// declaration line; ignored beyond occupying its slot in the file.
	}
	if !foundSection {
		return false, nil, ErrMissingEdgeSection
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "*") {
			break
		}
		lines = append(lines, line)
	}

	return directed, lines, nil
}

func parseEndpoints(line string, n int) (i, j int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	fi, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	fj, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	if fi < 1 || fi > n || fj < 1 || fj > n {
		return 0, 0, fmt.Errorf("%w: %q", ErrNodeIndexOutOfRange, line)
	}

	return fi - 1, fj - 1, nil
}
