package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-dnnf/decdnnf/graph"
)

// parseLiterals accepts assumptions passed as repeated -a flags and/or a
// single comma-separated flag value ("-a 1,-2,3").
func parseLiterals(raw []string) ([]graph.Literal, error) {
	var out []graph.Literal
	for _, group := range raw {
		for _, tok := range strings.Split(group, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			n, err := strconv.Atoi(tok)
			if err != nil || n == 0 {
				return nil, fmt.Errorf("invalid assumption literal %q: must be a nonzero integer", tok)
			}
			v := n
			if v < 0 {
				v = -v
			}
			out = append(out, graph.NewLiteral(v, n > 0))
		}
	}

	return out, nil
}

// formatModel renders a model as space-separated signed literals, e.g.
// "1 -2 3". An empty model (every variable free and unconstrained) prints
// as an empty line.
func formatModel(lits []graph.Literal) string {
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = strconv.Itoa(int(l))
	}

	return strings.Join(parts, " ")
}
