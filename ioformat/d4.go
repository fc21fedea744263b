// File: d4.go
package ioformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/go-dnnf/decdnnf/graph"
)

// ReadD4 parses d4's line-oriented text format into a Graph.
// Node declarations and edges may appear in any relative order (the d4
// writer that produced X is not assumed to group them); ReadD4 buffers the
// input and resolves node declarations before edges. The root is the node
// with the smallest external identifier, the d4 convention graph.Builder
// already applies by default.
func ReadD4(r io.Reader, opts ...Option) (*graph.Graph, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	type rawLine struct {
		no     int
		text   string
		fields []string
	}

	var lines []rawLine
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, rawLine{no: lineNo, text: text, fields: strings.Fields(text)})
	}
	if err := sc.Err(); err != nil {
		return nil, &graph.IOError{Op: "read d4", Err: err}
	}

	b := graph.NewBuilder(0)
	kindOf := make(map[int]string, len(lines))
	maxVar := 0

	isNodeDecl := func(fields []string) bool {
		if len(fields) != 2 {
			return false
		}
		switch fields[1] {
		case "t", "f", "a", "o":
			return true
		default:
			return false
		}
	}

	for _, ln := range lines {
		if !isNodeDecl(ln.fields) {
			continue
		}
		id, err := strconv.Atoi(ln.fields[0])
		if err != nil || id <= 0 {
			return nil, &graph.ParseError{Line: ln.no, Text: ln.text, Msg: "node id must be a positive integer"}
		}
		switch ln.fields[1] {
		case "t":
			_, err = b.TrueLeaf(id)
		case "f":
			_, err = b.FalseLeaf(id)
		case "a":
			_, err = b.AndNode(id)
			kindOf[id] = "a"
		case "o":
			_, err = b.OrNode(id)
			kindOf[id] = "o"
		}
		if err != nil {
			return nil, &graph.ParseError{Line: ln.no, Text: ln.text, Msg: err.Error()}
		}
	}

	for _, ln := range lines {
		if isNodeDecl(ln.fields) {
			continue
		}
		if len(ln.fields) < 3 || ln.fields[len(ln.fields)-1] != "0" {
			return nil, &graph.ParseError{Line: ln.no, Text: ln.text, Msg: "edge line must end in a 0 terminator"}
		}
		src, err := strconv.Atoi(ln.fields[0])
		if err != nil {
			return nil, &graph.ParseError{Line: ln.no, Text: ln.text, Msg: "edge source must be an integer"}
		}
		dst, err := strconv.Atoi(ln.fields[1])
		if err != nil {
			return nil, &graph.ParseError{Line: ln.no, Text: ln.text, Msg: "edge destination must be an integer"}
		}

		litFields := ln.fields[2 : len(ln.fields)-1]
		labels := make([]graph.Literal, 0, len(litFields))
		for _, lf := range litFields {
			lv, err := strconv.Atoi(lf)
			if err != nil || lv == 0 {
				return nil, &graph.ParseError{Line: ln.no, Text: ln.text, Msg: "branch label must be a nonzero integer literal"}
			}
			v := lv
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
			labels = append(labels, graph.NewLiteral(v, lv > 0))
		}

		switch kindOf[src] {
		case "a":
			if len(labels) != 0 {
				return nil, &graph.ParseError{Line: ln.no, Text: ln.text, Msg: "an And node's edges carry no labels"}
			}
			if err := b.AddChild(src, dst); err != nil {
				return nil, &graph.ParseError{Line: ln.no, Text: ln.text, Msg: err.Error()}
			}
		case "o":
			if err := b.AddBranch(src, dst, labels); err != nil {
				return nil, &graph.ParseError{Line: ln.no, Text: ln.text, Msg: err.Error()}
			}
		default:
			return nil, &graph.ParseError{Line: ln.no, Text: ln.text, Msg: "edge source is not a declared And/Or node"}
		}
	}

	if cfg.hasNVars {
		b.RaiseNVars(cfg.nVars)
	} else {
		b.RaiseNVars(maxVar)
	}

	return b.Build()
}
