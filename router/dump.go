package router

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// LayerText renders layer z as a plain-text integer matrix: one row per
// grid y, columns (x) separated by whitespace, EMPTY cells as -1 —
// matching the prototype's np.savetxt("routes-layer<k>", ..., fmt="%d")
// dump used for post-mortem inspection.
func (g *Grid) LayerText(z int) string {
	var buf bytes.Buffer
	for y := 0; y < g.dim.Y; y++ {
		for x := 0; x < g.dim.X; x++ {
			if x > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%d", g.route[z][x][y])
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

// DumpLayers writes one "routes-layer<k>" file per layer under dir.
func (g *Grid) DumpLayers(dir string) error {
	for z := 0; z < g.maxLayers; z++ {
		path := filepath.Join(dir, fmt.Sprintf("routes-layer%d", z))
		if err := os.WriteFile(path, []byte(g.LayerText(z)), 0o644); err != nil {
			return fmt.Errorf("router: writing %s: %w", path, err)
		}
	}
	return nil
}
