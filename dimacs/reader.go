package dimacs

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliquesat/core"
)

// ErrMalformed indicates a syntactically invalid DIMACS stream.
var ErrMalformed = errors.New("dimacs: malformed input")

// Header describes the problem line and the comments of a DIMACS stream.
type Header struct {
	Format        string
	Order         int
	DeclaredEdges int
	Edges         int
	Comments      []string
}

// ReadFile opens path and decodes it; ".gz" files are decompressed on the fly.
func ReadFile(path string) (*core.Graph, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, Header{}, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return Decode(r)
}

// Read decodes a graph and drops the header.
func Read(r io.Reader) (*core.Graph, error) {
	g, _, err := Decode(r)

	return g, err
}

// Decode parses a DIMACS edge stream into a Graph.
//
// Errors: ErrMalformed for syntax problems; core.ErrInvalidGraph (with
// core.ErrVertexOutOfRange or core.ErrSelfLoop) for bad edges. Every error
// carries its line number.
func Decode(r io.Reader) (*core.Graph, Header, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		hdr        Header
		b          *core.Builder
		seenHeader bool
		lineNo     int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "c":
			hdr.Comments = append(hdr.Comments, strings.TrimSpace(strings.TrimPrefix(line, "c")))

		case "p":
			if seenHeader {
				return nil, hdr, fmt.Errorf("line %d: second problem line: %w", lineNo, ErrMalformed)
			}
			if len(fields) != 4 {
				return nil, hdr, fmt.Errorf("line %d: expected 'p edge <n> <m>', got %q: %w", lineNo, line, ErrMalformed)
			}
			switch fields[1] {
			case "edge", "col", "clq":
			default:
				return nil, hdr, fmt.Errorf("line %d: unsupported format %q: %w", lineNo, fields[1], ErrMalformed)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, hdr, fmt.Errorf("line %d: invalid vertex count %q: %w", lineNo, fields[2], ErrMalformed)
			}
			if n > core.MaxOrder {
				return nil, hdr, fmt.Errorf("line %d: vertex count %d exceeds %d: %w", lineNo, n, core.MaxOrder, ErrMalformed)
			}
			m, err := strconv.Atoi(fields[3])
			if err != nil || m < 0 {
				return nil, hdr, fmt.Errorf("line %d: invalid edge count %q: %w", lineNo, fields[3], ErrMalformed)
			}
			hdr.Format, hdr.Order, hdr.DeclaredEdges = fields[1], n, m
			b = core.NewBuilder(n)
			seenHeader = true

		case "e":
			if !seenHeader {
				return nil, hdr, fmt.Errorf("line %d: edge before problem line: %w", lineNo, ErrMalformed)
			}
			if len(fields) != 3 {
				return nil, hdr, fmt.Errorf("line %d: expected 'e <u> <v>', got %q: %w", lineNo, line, ErrMalformed)
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, hdr, fmt.Errorf("line %d: non-integer endpoint %q: %w", lineNo, fields[1], ErrMalformed)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, hdr, fmt.Errorf("line %d: non-integer endpoint %q: %w", lineNo, fields[2], ErrMalformed)
			}
			if err = b.AddEdge(u-1, v-1); err != nil {
				return nil, hdr, fmt.Errorf("line %d: %w", lineNo, err)
			}
			hdr.Edges++

		case "n":
			// Vertex descriptors carry weights; the clique solvers are unweighted.

		default:
			return nil, hdr, fmt.Errorf("line %d: unknown line type %q: %w", lineNo, fields[0], ErrMalformed)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, hdr, fmt.Errorf("read: %w", err)
	}
	if !seenHeader {
		return nil, hdr, fmt.Errorf("missing problem line: %w", ErrMalformed)
	}

	g, err := b.Build()
	if err != nil {
		return nil, hdr, err
	}

	return g, hdr, nil
}
