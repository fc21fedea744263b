// File: binary.go
package ioformat

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/go-dnnf/decdnnf/graph"
)

// binaryMagic tags the stream so ReadBinary can reject non-binary input
// early with a ParseError instead of a confusing decode failure partway
// through.
var binaryMagic = [4]byte{'D', 'D', 'N', 'F'}

const binaryVersion = 1

// WriteBinary writes g in a length-prefixed binary encoding:
// fixed-width fields for scalars, an explicit count before every
// variable-length list (children, branches, branch labels). Every node's
// kind is written as one contiguous block before any node's payload, so
// ReadBinary can declare every node (which requires knowing its kind
// upfront) before wiring any child or branch reference — node ids need not
// be in topological order, forward references are normal.
func WriteBinary(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.Write(binaryMagic[:]); err != nil {
		return &graph.IOError{Op: "write binary", Err: err}
	}
	fields := []int32{binaryVersion, int32(g.NVars()), int32(g.NNodes()), int32(g.Root())}
	for _, f := range fields {
		if err := binary.Write(bw, binary.LittleEndian, f); err != nil {
			return &graph.IOError{Op: "write binary", Err: err}
		}
	}

	for id := graph.NodeID(0); int(id) < g.NNodes(); id++ {
		if err := binary.Write(bw, binary.LittleEndian, uint8(g.Kind(id))); err != nil {
			return &graph.IOError{Op: "write binary", Err: err}
		}
	}

	for id := graph.NodeID(0); int(id) < g.NNodes(); id++ {
		if err := writeBinaryPayload(bw, g, id); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return &graph.IOError{Op: "write binary", Err: err}
	}

	return nil
}

func writeBinaryPayload(bw *bufio.Writer, g *graph.Graph, id graph.NodeID) error {
	switch g.Kind(id) {
	case graph.And:
		children := g.Children(id)
		if err := binary.Write(bw, binary.LittleEndian, int32(len(children))); err != nil {
			return &graph.IOError{Op: "write binary", Err: err}
		}
		for _, c := range children {
			if err := binary.Write(bw, binary.LittleEndian, int32(c)); err != nil {
				return &graph.IOError{Op: "write binary", Err: err}
			}
		}
	case graph.Or:
		branches := g.Branches(id)
		if err := binary.Write(bw, binary.LittleEndian, int32(len(branches))); err != nil {
			return &graph.IOError{Op: "write binary", Err: err}
		}
		for _, br := range branches {
			if err := binary.Write(bw, binary.LittleEndian, int32(len(br.Labels))); err != nil {
				return &graph.IOError{Op: "write binary", Err: err}
			}
			for _, lit := range br.Labels {
				if err := binary.Write(bw, binary.LittleEndian, int32(lit)); err != nil {
					return &graph.IOError{Op: "write binary", Err: err}
				}
			}
			if err := binary.Write(bw, binary.LittleEndian, int32(br.Child)); err != nil {
				return &graph.IOError{Op: "write binary", Err: err}
			}
		}
	}

	return nil
}

// ReadBinary parses the encoding WriteBinary produces.
func ReadBinary(r io.Reader) (*graph.Graph, error) {
	br := bufio.NewReader(r)

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, &graph.IOError{Op: "read binary", Err: err}
	}
	if magic != binaryMagic {
		return nil, &graph.ParseError{Msg: "not a decdnnf binary stream (bad magic)"}
	}

	var version, nVars, nNodes, root int32
	for _, dst := range []*int32{&version, &nVars, &nNodes, &root} {
		if err := binary.Read(br, binary.LittleEndian, dst); err != nil {
			return nil, &graph.IOError{Op: "read binary", Err: err}
		}
	}
	if version != binaryVersion {
		return nil, &graph.ParseError{Msg: "unsupported decdnnf binary format version"}
	}
	if nNodes <= 0 {
		return nil, &graph.ParseError{Msg: "binary stream declares no nodes"}
	}

	b := graph.NewBuilder(int(nVars))
	kinds := make([]graph.NodeKind, nNodes)
	for i := int32(0); i < nNodes; i++ {
		var kind uint8
		if err := binary.Read(br, binary.LittleEndian, &kind); err != nil {
			return nil, &graph.IOError{Op: "read binary", Err: err}
		}
		kinds[i] = graph.NodeKind(kind)

		extID := int(i) + 1
		var declErr error
		switch kinds[i] {
		case graph.TrueLeaf:
			_, declErr = b.TrueLeaf(extID)
		case graph.FalseLeaf:
			_, declErr = b.FalseLeaf(extID)
		case graph.And:
			_, declErr = b.AndNode(extID)
		case graph.Or:
			_, declErr = b.OrNode(extID)
		default:
			declErr = &graph.ParseError{Msg: "unknown node kind tag in binary stream"}
		}
		if declErr != nil {
			return nil, declErr
		}
	}

	for i := int32(0); i < nNodes; i++ {
		if err := readBinaryPayload(b, int(i)+1, kinds[i], br); err != nil {
			return nil, err
		}
	}

	if err := b.SetRoot(int(root) + 1); err != nil {
		return nil, err
	}

	return b.Build()
}

func readBinaryPayload(b *graph.Builder, extID int, kind graph.NodeKind, br *bufio.Reader) error {
	switch kind {
	case graph.And:
		var n int32
		if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
			return &graph.IOError{Op: "read binary", Err: err}
		}
		for j := int32(0); j < n; j++ {
			var c int32
			if err := binary.Read(br, binary.LittleEndian, &c); err != nil {
				return &graph.IOError{Op: "read binary", Err: err}
			}
			if err := b.AddChild(extID, int(c)+1); err != nil {
				return err
			}
		}
	case graph.Or:
		var n int32
		if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
			return &graph.IOError{Op: "read binary", Err: err}
		}
		for j := int32(0); j < n; j++ {
			var nl int32
			if err := binary.Read(br, binary.LittleEndian, &nl); err != nil {
				return &graph.IOError{Op: "read binary", Err: err}
			}
			labels := make([]graph.Literal, nl)
			for l := int32(0); l < nl; l++ {
				var lit int32
				if err := binary.Read(br, binary.LittleEndian, &lit); err != nil {
					return &graph.IOError{Op: "read binary", Err: err}
				}
				labels[l] = graph.Literal(lit)
			}
			var c int32
			if err := binary.Read(br, binary.LittleEndian, &c); err != nil {
				return &graph.IOError{Op: "read binary", Err: err}
			}
			if err := b.AddBranch(extID, int(c)+1, labels); err != nil {
				return err
			}
		}
	}

	return nil
}
