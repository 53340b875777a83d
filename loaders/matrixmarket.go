package loaders

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/hybridbfs/csr"
)

// LoadMatrixMarket reads a MatrixMarket-format sparse matrix from r and
// builds the corresponding undirected csr.Graph.
//
// Vertex IDs on disk are 1-based; the returned graph is sized N+1 so that
// on-disk IDs can be used directly as indices and vertex 0 is simply never
// touched by any edge.
//
// Per spec.md §6, a data row's weight must be 1 but this loader does not
// assert that: any value is accepted, and logger receives a single Warn
// the first time a non-1 weight is seen (not once per line, to keep a
// malformed-weight file from flooding the log).
func LoadMatrixMarket(r io.Reader, logger *slog.Logger) (*csr.Graph, error) {
	if logger == nil {
		logger = slog.Default()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var m, n, nnz int
	headerSeen := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("loaders: MatrixMarket dimension line %q: %w", line, ErrMalformedHeader)
		}
		var err error
		if m, err = strconv.Atoi(fields[0]); err != nil {
			return nil, fmt.Errorf("loaders: MatrixMarket dimension line %q: %w", line, ErrMalformedHeader)
		}
		if n, err = strconv.Atoi(fields[1]); err != nil {
			return nil, fmt.Errorf("loaders: MatrixMarket dimension line %q: %w", line, ErrMalformedHeader)
		}
		if nnz, err = strconv.Atoi(fields[2]); err != nil {
			return nil, fmt.Errorf("loaders: MatrixMarket dimension line %q: %w", line, ErrMalformedHeader)
		}
		headerSeen = true
		break
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: reading MatrixMarket header: %w", err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("loaders: empty input: %w", ErrMalformedHeader)
	}
	if m != n {
		return nil, fmt.Errorf("loaders: M=%d N=%d: %w", m, n, ErrNonSquareMatrix)
	}

	b, err := csr.NewBuilder(n + 1)
	if err != nil {
		return nil, err
	}

	warnedWeight := false
	rows := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("loaders: MatrixMarket data row %q: %w", line, ErrMalformedLine)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("loaders: MatrixMarket data row %q: %w", line, ErrMalformedLine)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("loaders: MatrixMarket data row %q: %w", line, ErrMalformedLine)
		}
		if len(fields) >= 3 && !warnedWeight {
			if w, err := strconv.ParseFloat(fields[2], 64); err == nil && w != 1 {
				logger.Warn("MatrixMarket weight != 1 ignored", slog.Float64("weight", w))
				warnedWeight = true
			}
		}

		b.AddEdge(int32(u), int32(v))
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: reading MatrixMarket body: %w", err)
	}
	if rows != nnz {
		logger.Warn("MatrixMarket declared nnz does not match row count", slog.Int("declared", nnz), slog.Int("read", rows))
	}

	return b.Finalize()
}
