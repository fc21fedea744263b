// File: walk.go
package enum

import (
	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

// continuation receives the path extended by whatever the current node
// contributed, and decides what happens next — either "emit it" (the
// outermost continuation) or "move on to the next And child". Threading an
// explicit continuation is what turns And's children into a Cartesian
// product without revisiting a shared node's own walk logic.
type continuation func(Model) error

// walker holds the two enumeration modes' shared traversal. expandFree
// distinguishes full enumeration (true: ambient free variables are
// expanded into explicit literal choices) from disjoint-partial
// enumeration (false: they are left unassigned).
type walker struct {
	g          *graph.Graph
	ix         *varset.Index
	visit      Visitor
	ctx        canceller
	expandFree bool
}

// canceller is the subset of context.Context the walker needs; kept as an
// interface so a nil Options.ctx needs no special-casing beyond returning a
// no-op canceller.
type canceller interface {
	Done() <-chan struct{}
	Err() error
}

type noopCanceller struct{}

func (noopCanceller) Done() <-chan struct{} { return nil }
func (noopCanceller) Err() error            { return nil }

func (w *walker) checkCancel() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}

// run starts the walk from g's root, wrapping the whole graph in the
// global free-variable expansion (variables absent from vars(root)) when
// expandFree is set.
func (w *walker) run() error {
	root := w.g.Root()
	k := continuation(func(p Model) error { return w.emit(p) })

	if !w.expandFree {
		return w.walk(root, nil, k)
	}

	free := varset.FullRange(w.g.NVars()).Sub(w.ix.Vars(root)).Vars()

	return w.expandFreeVars(free, nil, func(p Model) error {
		return w.walk(root, p, k)
	})
}

func (w *walker) emit(path Model) error {
	if err := w.checkCancel(); err != nil {
		return err
	}

	return w.visit(path)
}

// walk dispatches on node's kind, calling k once this node's own
// contribution to the path has been decided. TrueLeaf invokes k directly;
// FalseLeaf contributes nothing (the branch is pruned); And and Or recurse
// into their own structure before eventually reaching k.
func (w *walker) walk(node graph.NodeID, path Model, k continuation) error {
	if err := w.checkCancel(); err != nil {
		return err
	}

	switch w.g.Kind(node) {
	case graph.TrueLeaf:
		return k(path)
	case graph.FalseLeaf:
		return nil
	case graph.And:
		return w.walkChildren(w.g.Children(node), 0, path, k)
	case graph.Or:
		return w.walkBranches(node, path, k)
	default:
		return nil
	}
}

// walkChildren combines an And node's children by chained continuations:
// child i's walk calls into child i+1's walk once it reaches a leaf,
// so the final k only fires once every child has contributed — the
// Cartesian product of the children's own model sets.
func (w *walker) walkChildren(children []graph.NodeID, idx int, path Model, k continuation) error {
	if idx == len(children) {
		return k(path)
	}

	return w.walk(children[idx], path, func(p Model) error {
		return w.walkChildren(children, idx+1, p, k)
	})
}

// walkBranches extends path with each branch's labels in turn and descends
// into its child. In full mode, the branch's own free-variable frontier
// (vars(or) minus vars(child) minus the label variables) is expanded into
// explicit choices before the descent; in disjoint-partial mode those
// variables are simply left unassigned.
func (w *walker) walkBranches(or graph.NodeID, path Model, k continuation) error {
	orVars := w.ix.Vars(or)

	for _, br := range w.g.Branches(or) {
		if err := w.checkCancel(); err != nil {
			return err
		}

		extended := appendLiterals(path, br.Labels)

		if !w.expandFree {
			if err := w.walk(br.Child, extended, k); err != nil {
				return err
			}

			continue
		}

		free := orVars.Sub(w.ix.Vars(br.Child)).Sub(labelVars(br.Labels)).Vars()
		err := w.expandFreeVars(free, extended, func(p Model) error {
			return w.walk(br.Child, p, k)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// expandFreeVars enumerates both polarities of every variable in vars,
// negative before positive, as a flat loop over 2^len(vars) bit patterns —
// not a recursive descent — so a large free-variable frontier costs no
// extra call-stack depth, only the (inherent) output it produces.
func (w *walker) expandFreeVars(vars []int, path Model, k continuation) error {
	n := len(vars)
	if n == 0 {
		return k(path)
	}

	total := 1 << uint(n)
	for mask := 0; mask < total; mask++ {
		if err := w.checkCancel(); err != nil {
			return err
		}

		ext := make(Model, len(path), len(path)+n)
		copy(ext, path)
		for i, v := range vars {
			ext = append(ext, graph.NewLiteral(v, mask&(1<<uint(i)) != 0))
		}

		if err := k(ext); err != nil {
			return err
		}
	}

	return nil
}

func appendLiterals(path Model, labels []graph.Literal) Model {
	ext := make(Model, len(path), len(path)+len(labels))
	copy(ext, path)

	return append(ext, labels...)
}

func labelVars(labels []graph.Literal) varset.Set {
	s := varset.Empty()
	for _, l := range labels {
		s = s.WithVar(l.Var())
	}

	return s
}
