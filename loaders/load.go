package loaders

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/hybridbfs/csr"
)

// Load opens the file at path and dispatches to LoadMatrixMarket or
// LoadEdgeList based on its suffix (".mm" or ".txt"), matching the
// original command's filename-suffix dispatch. logger receives
// MatrixMarket's weight diagnostics; a nil logger falls back to
// slog.Default().
func Load(path string, logger *slog.Logger) (*csr.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: opening %s: %w", path, err)
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".mm"):
		return LoadMatrixMarket(f, logger)
	case strings.HasSuffix(path, ".txt"):
		return LoadEdgeList(f)
	default:
		return nil, fmt.Errorf("loaders: %s: %w", path, ErrUnknownSuffix)
	}
}
