package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markalston/pump-head/internal/catalog"
	"github.com/markalston/pump-head/internal/hydraulics"
	"github.com/markalston/pump-head/internal/sizing"
)

const testCatalog = `Model,Manufacturer,HP,Head m,Suitability
Booster 120,Acme,7.5,"[120, 150]",High-rise
Lift 40,Hydro,2,40,Villa
`

const testCapacities = `STP Capacity (KLD)
50
100
100
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// newTestApp builds an App backed by temporary catalog and capacity files.
func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	store := catalog.NewStore(writeFile(t, dir, "pumps.csv", testCatalog))
	return New(Options{
		Sizer:          sizing.New(store, hydraulics.DefaultCoefficients()),
		Store:          store,
		CapacitiesPath: writeFile(t, dir, "capacities.csv", testCapacities),
		BarScale:       2,
	})
}
