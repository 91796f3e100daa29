// ABOUTME: Tests for the results view
// ABOUTME: Covers headline, pump table, warnings and the derivation toggle

package results

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/markalston/pump-head/internal/catalog"
	"github.com/markalston/pump-head/internal/hydraulics"
	"github.com/markalston/pump-head/internal/sizing"
)

type stubSource struct {
	cat *catalog.Catalog
	err error
}

func (s stubSource) Get(context.Context) (*catalog.Catalog, error) {
	return s.cat, s.err
}

func sizeWith(t *testing.T, src stubSource) *sizing.Report {
	t.Helper()
	in := hydraulics.CalculationInput{
		VerticalHeightM:       66,
		HorizontalDistanceM:   109,
		BendsFittingsLossM:    5,
		RequiredPressureKgCm2: 3.5,
		STPCapacityKLD:        100,
		PipeSize:              `6" GI`,
	}
	report, err := sizing.New(src, hydraulics.DefaultCoefficients()).Size(context.Background(), in)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	return report
}

func plain(s string) string {
	return ansi.Strip(s)
}

func TestResultsShowsHeadlineAndPumps(t *testing.T) {
	cat := catalog.New("test", []catalog.PumpRecord{
		{Model: "Booster 120", Manufacturer: "Acme", Horsepower: 7.5, Head: catalog.Range(120, 150), Suitability: "High-rise", MinHeadM: 120},
		{Model: "Tiny", Manufacturer: "Acme", Horsepower: 1, Head: catalog.Scalar(20), Suitability: "Garden", MinHeadM: 20},
	})
	r := New(sizeWith(t, stubSource{cat: cat}), 120, 40, 2)

	content := plain(r.Content())
	for _, want := range []string{"Total Head Required: 118 m", "Flow Rate (from STP): 1.16 LPS", "Booster 120", "1 pump", "Loss Components", "Vertical Height"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected content to contain %q", want)
		}
	}
	if strings.Contains(content, "Tiny") {
		t.Error("pump below required head should not be listed")
	}
}

func TestResultsToggleDetails(t *testing.T) {
	r := New(sizeWith(t, stubSource{cat: catalog.New("test", nil)}), 120, 40, 2)

	if strings.Contains(plain(r.Content()), "Calculation Steps") {
		t.Error("derivation should be collapsed by default")
	}

	r.ToggleDetails()
	content := plain(r.Content())
	if !r.Expanded() {
		t.Error("expected expanded after toggle")
	}
	for _, want := range []string{"Calculation Steps", "Flow Rate = (100.00 × 1000) / (24 × 60 × 60) = 1.16 LPS", `Pipe Size = 6" GI`} {
		if !strings.Contains(content, want) {
			t.Errorf("expected content to contain %q", want)
		}
	}
}

func TestResultsEmptyCatalogWarning(t *testing.T) {
	r := New(sizeWith(t, stubSource{cat: catalog.New("test", nil)}), 120, 40, 2)

	content := plain(r.Content())
	if !strings.Contains(content, "EMPTY CATALOG") {
		t.Error("expected empty catalog badge")
	}
	if !strings.Contains(content, "Pump catalog is empty") {
		t.Error("expected empty catalog message")
	}
}

func TestResultsCatalogUnavailable(t *testing.T) {
	r := New(sizeWith(t, stubSource{err: catalog.ErrDataUnavailable}), 120, 40, 2)

	content := plain(r.Content())
	if !strings.Contains(content, "Total Head Required: 118 m") {
		t.Error("head should still be shown when the catalog is unavailable")
	}
	if !strings.Contains(content, "Pump data not loaded") {
		t.Error("expected catalog error message")
	}
}

func TestResultsNilReport(t *testing.T) {
	r := New(nil, 80, 20, 2)
	if r.Content() != "No results" {
		t.Errorf("unexpected content %q", r.Content())
	}
}
