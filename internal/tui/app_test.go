// ABOUTME: Tests for root TUI application model
// ABOUTME: Validates screen transitions, key handling and rendering

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/markalston/pump-head/internal/catalog"
	"github.com/markalston/pump-head/internal/hydraulics"
	"github.com/markalston/pump-head/internal/tui/form"
)

func referenceInput() hydraulics.CalculationInput {
	return hydraulics.CalculationInput{
		VerticalHeightM:       66,
		HorizontalDistanceM:   109,
		BendsFittingsLossM:    5,
		RequiredPressureKgCm2: 3.5,
		STPCapacityKLD:        100,
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppInitialState(t *testing.T) {
	app := newTestApp(t)

	if app.Screen() != ScreenLoading {
		t.Errorf("expected ScreenLoading, got %v", app.Screen())
	}
	if app.Init() == nil {
		t.Error("expected Init to start loading")
	}
}

func TestScreenConstants(t *testing.T) {
	if ScreenLoading != 0 {
		t.Errorf("expected ScreenLoading = 0, got %d", ScreenLoading)
	}
	if ScreenForm != 1 {
		t.Errorf("expected ScreenForm = 1, got %d", ScreenForm)
	}
	if ScreenCalculating != 2 {
		t.Errorf("expected ScreenCalculating = 2, got %d", ScreenCalculating)
	}
	if ScreenResults != 3 {
		t.Errorf("expected ScreenResults = 3, got %d", ScreenResults)
	}
	if ScreenError != 4 {
		t.Errorf("expected ScreenError = 4, got %d", ScreenError)
	}
}

func TestAppLoadSources(t *testing.T) {
	app := newTestApp(t)

	msg := app.loadSources()().(sourcesLoadedMsg)
	if msg.capErr != nil || msg.catErr != nil {
		t.Fatalf("unexpected errors: %v / %v", msg.capErr, msg.catErr)
	}
	if len(msg.capacities) != 2 {
		t.Errorf("expected 2 distinct capacities, got %v", msg.capacities)
	}
	if msg.catalog.Len() != 2 {
		t.Errorf("expected 2 pumps, got %d", msg.catalog.Len())
	}

	app.Update(msg)
	if app.Screen() != ScreenForm {
		t.Errorf("expected ScreenForm after loading, got %v", app.Screen())
	}
	if !strings.Contains(app.View(), "pumps.csv (2 pumps)") {
		t.Error("expected header to show the catalog source")
	}
}

func TestAppMissingCapacitiesShowsError(t *testing.T) {
	app := newTestApp(t)
	app.opts.CapacitiesPath = "/nonexistent/stp_output_summary.xlsx"

	app.Update(app.loadSources()())
	if app.Screen() != ScreenError {
		t.Fatalf("expected ScreenError, got %v", app.Screen())
	}
	if !strings.Contains(app.View(), "'stp_output_summary.xlsx' could not be read") {
		t.Error("expected missing file message")
	}

	// n does nothing without capacities; r retries
	app.Update(key("n"))
	if app.Screen() != ScreenError {
		t.Errorf("expected to stay on ScreenError, got %v", app.Screen())
	}
	app.Update(key("r"))
	if app.Screen() != ScreenLoading {
		t.Errorf("expected ScreenLoading after retry, got %v", app.Screen())
	}
}

func TestAppMissingCatalogStillShowsForm(t *testing.T) {
	app := newTestApp(t)
	app.opts.Store = catalog.NewStore("/nonexistent/pumps.csv")

	app.Update(app.loadSources()())
	if app.Screen() != ScreenForm {
		t.Fatalf("expected ScreenForm, got %v", app.Screen())
	}
	if !strings.Contains(app.View(), "Pump data not loaded") {
		t.Error("expected catalog warning above the form")
	}
}

func TestAppCalculationFlow(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	app.Update(app.loadSources()())

	_, cmd := app.Update(form.SubmittedMsg{Input: referenceInput()})
	if app.Screen() != ScreenCalculating {
		t.Fatalf("expected ScreenCalculating, got %v", app.Screen())
	}
	if cmd == nil {
		t.Fatal("expected calculation command")
	}

	app.Update(app.calculate(referenceInput())())
	if app.Screen() != ScreenResults {
		t.Fatalf("expected ScreenResults, got %v", app.Screen())
	}

	view := app.View()
	if !strings.Contains(view, "118 m") {
		t.Error("expected total head in results")
	}
	if !strings.Contains(view, "Booster 120") {
		t.Error("expected matching pump in results")
	}
	if strings.Contains(view, "Lift 40") {
		t.Error("pump below the required head should not be listed")
	}

	app.Update(key("d"))
	if !app.resultsView.Expanded() {
		t.Error("expected d to expand the derivation")
	}

	app.Update(key("n"))
	if app.Screen() != ScreenForm {
		t.Errorf("expected n to open the form, got %v", app.Screen())
	}
	in, err := app.formScreen.Input()
	if err != nil {
		t.Fatalf("unexpected form error: %v", err)
	}
	if in.STPCapacityKLD != 100 {
		t.Errorf("expected form to keep the last capacity, got %v", in.STPCapacityKLD)
	}

	app.Update(form.CancelledMsg{})
	if app.Screen() != ScreenResults {
		t.Errorf("expected esc to return to results, got %v", app.Screen())
	}
}

func TestAppValidationErrorScreen(t *testing.T) {
	app := newTestApp(t)
	app.Update(app.loadSources()())

	in := referenceInput()
	in.STPCapacityKLD = 0
	app.Update(app.calculate(in)())

	if app.Screen() != ScreenError {
		t.Fatalf("expected ScreenError, got %v", app.Screen())
	}
	if !strings.Contains(app.View(), "stp_capacity_kld") {
		t.Error("expected the offending field to be listed")
	}

	app.Update(key("n"))
	if app.Screen() != ScreenForm {
		t.Errorf("expected n to return to the form, got %v", app.Screen())
	}
}

func TestAppReloadKeepsPreviousCatalogOnFailure(t *testing.T) {
	app := newTestApp(t)
	app.Update(app.loadSources()())
	before := app.catalog

	app.Update(catalogReloadedMsg{err: catalog.ErrDataUnavailable})
	if app.catalog != before {
		t.Error("expected previous catalog to be kept")
	}
	if !strings.HasPrefix(app.status, "Catalog reload failed") {
		t.Errorf("unexpected status %q", app.status)
	}
}

func TestAppReloadRecalculatesResults(t *testing.T) {
	app := newTestApp(t)
	app.Update(app.loadSources()())
	app.Update(form.SubmittedMsg{Input: referenceInput()})
	app.Update(app.calculate(referenceInput())())

	_, cmd := app.Update(key("r"))
	msg := cmd().(catalogReloadedMsg)
	if msg.err != nil {
		t.Fatalf("reload failed: %v", msg.err)
	}

	_, cmd = app.Update(msg)
	if app.status != "Catalog reloaded: 2 pumps" {
		t.Errorf("unexpected status %q", app.status)
	}
	if cmd == nil {
		t.Error("expected results to be recalculated after reload")
	}
}

func TestAppQuitKeys(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected ctrl+c to quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	_, cmd = app.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected q to quit while loading")
	}
}

func TestFormatTimeSince(t *testing.T) {
	now := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
	app := newTestApp(t)
	app.opts.Clock = clockwork.NewFakeClockAt(now)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "just now"},
		{20 * time.Second, "20s ago"},
		{3 * time.Minute, "3m ago"},
		{2 * time.Hour, "2h ago"},
	}
	for _, tt := range tests {
		if got := app.formatTimeSince(now.Add(-tt.ago)); got != tt.want {
			t.Errorf("formatTimeSince(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

func TestFooterShowsCatalogAge(t *testing.T) {
	loaded := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	catalog.SetClock(clockwork.NewFakeClockAt(loaded))
	defer catalog.SetClock(nil)

	app := newTestApp(t)
	app.opts.Clock = clockwork.NewFakeClockAt(loaded.Add(5 * time.Minute))
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	app.Update(app.loadSources()())
	app.Update(app.calculate(referenceInput())())

	if !strings.Contains(app.View(), "Catalog loaded 5m ago") {
		t.Error("expected footer to show the catalog age")
	}
}
