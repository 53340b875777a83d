package loaders

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hybridbfs/csr"
)

// LoadEdgeList reads a plain edge-list from r and builds the corresponding
// undirected csr.Graph.
//
// Vertex IDs on disk are 0-based. Lines beginning with "#" are comments;
// blank lines are skipped. N is inferred as max(id)+1 across all edges, so
// every edge is parsed and held in memory before the graph is sized and
// the edges are added.
func LoadEdgeList(r io.Reader) (*csr.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loaders: reading edge-list: %w", err)
	}

	type edge struct{ u, v int32 }
	var edges []edge
	maxID := int32(-1)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("loaders: edge-list row %q: %w", line, ErrMalformedLine)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("loaders: edge-list row %q: %w", line, ErrMalformedLine)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("loaders: edge-list row %q: %w", line, ErrMalformedLine)
		}

		edges = append(edges, edge{u: int32(u), v: int32(v)})
		if int32(u) > maxID {
			maxID = int32(u)
		}
		if int32(v) > maxID {
			maxID = int32(v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: scanning edge-list: %w", err)
	}
	if len(edges) == 0 {
		return nil, ErrEmptyEdgeList
	}

	b, err := csr.NewBuilder(int(maxID) + 1)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		b.AddEdge(e.u, e.v)
	}

	return b.Finalize()
}
