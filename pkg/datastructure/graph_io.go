package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// ErrMalformedGraphFile is returned when a graph file does not follow the "n m" header plus
// m "u v w" triples layout.
var ErrMalformedGraphFile = errors.New("datastructure: malformed graph file")

const bzip2Extension = ".bz2"

// ReadGraph parses a graph in the benchmark layout: a "n m" header followed by m triples
// "u v w" with 1-based vertex indices. Tokens may be split across lines arbitrarily.
func ReadGraph(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	token := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		token++
		return sc.Text(), true
	}

	readInt := func(what string) (int64, error) {
		tok, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: unexpected end of input, expected %s", ErrMalformedGraphFile, what)
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: token %d (%s): %q is not an integer", ErrMalformedGraphFile, token, what, tok)
		}
		return v, nil
	}

	n, err := readInt("vertex count")
	if err != nil {
		return nil, err
	}
	m, err := readInt("edge count")
	if err != nil {
		return nil, err
	}
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("%w: header must be non-negative (got n=%d m=%d)", ErrMalformedGraphFile, n, m)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: vertex count %d exceeds %d", ErrInvalidGraph, n, int64(MaxVertices))
	}

	g, err := NewGraph(int(n))
	if err != nil {
		return nil, err
	}

	for i := int64(0); i < m; i++ {
		u, err := readInt(fmt.Sprintf("edge %d tail", i+1))
		if err != nil {
			return nil, err
		}
		v, err := readInt(fmt.Sprintf("edge %d head", i+1))
		if err != nil {
			return nil, err
		}
		w, err := readInt(fmt.Sprintf("edge %d weight", i+1))
		if err != nil {
			return nil, err
		}

		// external indices are 1-based
		if u < 1 || u > n || v < 1 || v > n {
			return nil, fmt.Errorf("%w: edge %d (%d,%d) outside [1,%d]", ErrInvalidGraph, i+1, u, v, n)
		}
		if err := g.AddEdge(Index(u-1), Index(v-1), w); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i+1, err)
		}
	}

	if tok, ok := next(); ok {
		return nil, fmt.Errorf("%w: trailing token %q after %d edges", ErrMalformedGraphFile, tok, m)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadGraphFile reads a graph file, decompressing it when the name ends with .bz2.
func ReadGraphFile(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, bzip2Extension) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	g, err := ReadGraph(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return g, nil
}

// WriteGraph writes g in the layout accepted by ReadGraph.
func WriteGraph(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NumberOfVertices(), g.NumberOfEdges()); err != nil {
		return err
	}
	for _, e := range g.edgeList {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.from+1, e.to+1, e.weight); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteGraphFile writes g to filename, bzip2 compressed when the name ends with .bz2.
func WriteGraphFile(filename string, g *Graph) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(filename, bzip2Extension) {
		return WriteGraph(f, g)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := WriteGraph(bz, g); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}
