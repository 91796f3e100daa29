package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markalston/pump-head/internal/config"
	"github.com/markalston/pump-head/internal/hydraulics"
)

const testCatalog = `Model,Manufacturer,HP,Head m,Suitability
Booster 120,Acme,7.5,"[120, 150]",High-rise
Lift 40,Hydro,2,40,Villa
Broken,Hydro,2,"[40]",Villa
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func testConfig(t *testing.T, catalogContent string) *config.Config {
	t.Helper()
	return &config.Config{
		CatalogPath:  writeFile(t, "pumps.csv", catalogContent),
		Coefficients: hydraulics.DefaultCoefficients(),
		BarScale:     2,
	}
}

func referenceInput() hydraulics.CalculationInput {
	return hydraulics.CalculationInput{
		VerticalHeightM:       66,
		HorizontalDistanceM:   109,
		BendsFittingsLossM:    5,
		RequiredPressureKgCm2: 3.5,
		STPCapacityKLD:        100,
		PipeSize:              `6" GI`,
	}
}
