// File: c2d.go
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-dnnf/decdnnf/graph"
)

type color uint8

const (
	white color = iota
	gray
	black
)

type writeFrame struct {
	id  graph.NodeID
	pos int
}

func c2dOutEdges(g *graph.Graph, v graph.NodeID) []graph.NodeID {
	switch g.Kind(v) {
	case graph.And:
		return g.Children(v)
	case graph.Or:
		branches := g.Branches(v)
		out := make([]graph.NodeID, len(branches))
		for i, b := range branches {
			out[i] = b.Child
		}

		return out
	default:
		return nil
	}
}

// WriteC2D translates g into c2d's NNF text format and writes
// it to w. Or-branch labels, which c2d's L/A/O grammar has no slot for,
// become their own literal leaves wrapped with the branch's child in a
// synthetic And; TrueLeaf/FalseLeaf become the empty And/Or.
func WriteC2D(w io.Writer, g *graph.Graph) error {
	n := g.NNodes()
	colors := make([]color, n)
	nodeOut := make([]int, n)
	litOut := make(map[graph.Literal]int)
	var lines []string
	nextID := 1
	edges := 0

	allocLit := func(l graph.Literal) int {
		if id, ok := litOut[l]; ok {
			return id
		}
		id := nextID
		nextID++
		lines = append(lines, fmt.Sprintf("L %d", int(l)))
		litOut[l] = id

		return id
	}

	var stack []writeFrame
	push := func(id graph.NodeID) error {
		if colors[id] == gray {
			return &graph.InvalidStructureError{Node: id, Msg: "cycle detected while writing c2d"}
		}
		colors[id] = gray
		stack = append(stack, writeFrame{id: id})

		return nil
	}

	if err := push(g.Root()); err != nil {
		return err
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := c2dOutEdges(g, top.id)
		if top.pos < len(kids) {
			child := kids[top.pos]
			top.pos++
			switch colors[child] {
			case white:
				if err := push(child); err != nil {
					return err
				}
			case gray:
				return &graph.InvalidStructureError{Node: child, Msg: "cycle detected while writing c2d"}
			case black:
			}

			continue
		}

		var id int
		switch g.Kind(top.id) {
		case graph.TrueLeaf:
			id = nextID
			nextID++
			lines = append(lines, "A 0")
		case graph.FalseLeaf:
			id = nextID
			nextID++
			lines = append(lines, "O 0 0")
		case graph.And:
			children := g.Children(top.id)
			parts := make([]string, 0, len(children)+2)
			parts = append(parts, "A", strconv.Itoa(len(children)))
			for _, c := range children {
				parts = append(parts, strconv.Itoa(nodeOut[c]))
			}
			id = nextID
			nextID++
			lines = append(lines, strings.Join(parts, " "))
			edges += len(children)
		case graph.Or:
			branches := g.Branches(top.id)
			childOuts := make([]int, len(branches))
			for i, br := range branches {
				if len(br.Labels) == 0 {
					childOuts[i] = nodeOut[br.Child]

					continue
				}
				litIDs := make([]int, 0, len(br.Labels))
				for _, lit := range br.Labels {
					litIDs = append(litIDs, allocLit(lit))
				}
				arity := len(litIDs) + 1
				parts := make([]string, 0, arity+2)
				parts = append(parts, "A", strconv.Itoa(arity))
				for _, lid := range litIDs {
					parts = append(parts, strconv.Itoa(lid))
				}
				parts = append(parts, strconv.Itoa(nodeOut[br.Child]))
				wrapID := nextID
				nextID++
				lines = append(lines, strings.Join(parts, " "))
				edges += arity
				childOuts[i] = wrapID
			}

			decisionVar := 0
			if len(branches) == 2 && len(branches[0].Labels) == 1 && len(branches[1].Labels) == 1 {
				l0, l1 := branches[0].Labels[0], branches[1].Labels[0]
				if l0.Var() == l1.Var() && l0.Positive() != l1.Positive() {
					decisionVar = l0.Var()
				}
			}

			parts := make([]string, 0, len(childOuts)+3)
			parts = append(parts, "O", strconv.Itoa(decisionVar), strconv.Itoa(len(childOuts)))
			for _, co := range childOuts {
				parts = append(parts, strconv.Itoa(co))
			}
			id = nextID
			nextID++
			lines = append(lines, strings.Join(parts, " "))
			edges += len(childOuts)
		}

		nodeOut[top.id] = id
		colors[top.id] = black
		stack = stack[:len(stack)-1]
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "nnf %d %d %d\n", len(lines), edges, g.NVars()); err != nil {
		return &graph.IOError{Op: "write c2d", Err: err}
	}
	for _, l := range lines {
		if _, err := bw.WriteString(l + "\n"); err != nil {
			return &graph.IOError{Op: "write c2d", Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &graph.IOError{Op: "write c2d", Err: err}
	}

	return nil
}

// ReadC2D parses c2d's NNF text format into a Graph. Each literal leaf is
// reconstructed as a single-branch Or (the branch labeled with that
// literal, leading to a fresh TrueLeaf) since the internal node variant has
// no literal-leaf kind of its own; this preserves model counts exactly,
// the same translation WriteC2D performs in reverse. The root is the last
// node line (c2d's own convention: children before parents).
func ReadC2D(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, &graph.ParseError{Msg: "missing c2d header"}
	}
	header := strings.Fields(strings.TrimSpace(sc.Text()))
	if len(header) != 4 || header[0] != "nnf" {
		return nil, &graph.ParseError{Line: 1, Text: sc.Text(), Msg: "malformed c2d header, expected 'nnf <nodes> <edges> <n_vars>'"}
	}
	nNodes, err1 := strconv.Atoi(header[1])
	_, err2 := strconv.Atoi(header[2])
	nVars, err3 := strconv.Atoi(header[3])
	if err1 != nil || err2 != nil || err3 != nil || nNodes <= 0 {
		return nil, &graph.ParseError{Line: 1, Text: sc.Text(), Msg: "c2d header fields must be non-negative integers"}
	}

	b := graph.NewBuilder(nVars)
	nextSynthetic := nNodes + 1
	lineNo := 1

	for extID := 1; extID <= nNodes; extID++ {
		if !sc.Scan() {
			return nil, &graph.ParseError{Line: lineNo + 1, Msg: "unexpected end of input, fewer node lines than header declared"}
		}
		lineNo++
		text := strings.TrimSpace(sc.Text())
		fields := strings.Fields(text)
		if len(fields) == 0 {
			return nil, &graph.ParseError{Line: lineNo, Text: text, Msg: "empty node line"}
		}

		if err := readC2DLine(b, extID, fields, &nextSynthetic); err != nil {
			if pe, ok := err.(*graph.ParseError); ok {
				pe.Line = lineNo
				pe.Text = text

				return nil, pe
			}

			return nil, &graph.ParseError{Line: lineNo, Text: text, Msg: err.Error()}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &graph.IOError{Op: "read c2d", Err: err}
	}

	if err := b.SetRoot(nNodes); err != nil {
		return nil, err
	}

	return b.Build()
}

func readC2DLine(b *graph.Builder, extID int, fields []string, nextSynthetic *int) error {
	switch fields[0] {
	case "L":
		if len(fields) != 2 {
			return &graph.ParseError{Msg: "L line must have exactly one literal"}
		}
		litv, err := strconv.Atoi(fields[1])
		if err != nil || litv == 0 {
			return &graph.ParseError{Msg: "L line's literal must be a nonzero integer"}
		}
		v := litv
		if v < 0 {
			v = -v
		}
		trueExt := *nextSynthetic
		*nextSynthetic++
		if _, err := b.TrueLeaf(trueExt); err != nil {
			return err
		}
		if _, err := b.OrNode(extID); err != nil {
			return err
		}

		return b.AddBranch(extID, trueExt, []graph.Literal{graph.NewLiteral(v, litv > 0)})

	case "A":
		if len(fields) < 2 {
			return &graph.ParseError{Msg: "A line missing arity"}
		}
		arity, err := strconv.Atoi(fields[1])
		if err != nil || arity < 0 || len(fields) != 2+arity {
			return &graph.ParseError{Msg: "A line arity does not match child count"}
		}
		if arity == 0 {
			_, err := b.TrueLeaf(extID)

			return err
		}
		if _, err := b.AndNode(extID); err != nil {
			return err
		}
		for _, cf := range fields[2:] {
			cid, err := strconv.Atoi(cf)
			if err != nil {
				return &graph.ParseError{Msg: "A line child id must be an integer"}
			}
			if err := b.AddChild(extID, cid); err != nil {
				return err
			}
		}

		return nil

	case "O":
		if len(fields) < 3 {
			return &graph.ParseError{Msg: "O line missing decision variable or arity"}
		}
		if _, err := strconv.Atoi(fields[1]); err != nil {
			return &graph.ParseError{Msg: "O line decision variable must be an integer"}
		}
		arity, err := strconv.Atoi(fields[2])
		if err != nil || arity < 0 || len(fields) != 3+arity {
			return &graph.ParseError{Msg: "O line arity does not match child count"}
		}
		if arity == 0 {
			_, err := b.FalseLeaf(extID)

			return err
		}
		if _, err := b.OrNode(extID); err != nil {
			return err
		}
		for _, cf := range fields[3:] {
			cid, err := strconv.Atoi(cf)
			if err != nil {
				return &graph.ParseError{Msg: "O line child id must be an integer"}
			}
			if err := b.AddBranch(extID, cid, nil); err != nil {
				return err
			}
		}

		return nil

	default:
		return &graph.ParseError{Msg: fmt.Sprintf("unknown node line kind %q", fields[0])}
	}
}
