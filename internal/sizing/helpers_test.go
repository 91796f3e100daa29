package sizing

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T) string {
	t.Helper()
	content := `Model,Manufacturer,HP,Head m,Suitability
Booster 120,Acme,7.5,"[120, 150]",High-rise
Broken,Acme,5,"[oops]",High-rise
`
	path := filepath.Join(t.TempDir(), "pumps.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
