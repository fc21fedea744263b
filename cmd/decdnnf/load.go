package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/go-dnnf/decdnnf/check"
	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/ioformat"
	"github.com/go-dnnf/decdnnf/varset"
)

// openInput opens f.input, "-" meaning stdin.
func openInput(f *globalFlags) (io.ReadCloser, error) {
	if f.input == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(f.input)
}

// loadGraph parses the d4 input, builds the variable-set index, and runs
// the structural checker unless --do-not-check suppressed it; a checker
// failure is fatal unless checking was suppressed.
func loadGraph(f *globalFlags, log *slog.Logger) (*graph.Graph, *varset.Index, error) {
	r, err := openInput(f)
	if err != nil {
		return nil, nil, &graph.IOError{Op: "open input", Err: err}
	}
	defer r.Close()

	var opts []ioformat.Option
	if f.nVars > 0 {
		opts = append(opts, ioformat.WithNVars(f.nVars))
	}

	log.Debug("parsing d4 input", "file", f.input)
	g, err := ioformat.ReadD4(r, opts...)
	if err != nil {
		return nil, nil, err
	}
	log.Info("parsed graph", "nodes", g.NNodes(), "n_vars", g.NVars())

	ix, err := varset.Build(g)
	if err != nil {
		return nil, nil, err
	}

	if f.doNotCheck {
		log.Debug("skipping structural check (--do-not-check)")

		return g, ix, nil
	}

	log.Debug("running structural check")
	if err := check.Check(g, ix); err != nil {
		return nil, nil, err
	}

	return g, ix, nil
}
