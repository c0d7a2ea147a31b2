package engine

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tread/terminal"
)

func TestSessionOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	s, err := Open(terminal.NewTcellBackend(screen), testConfig(), 80, 24, "sim")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if screen.GetTitle() != "sim" {
		t.Errorf("title = %q", screen.GetTitle())
	}

	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	if err := s.BeginFrame(); err != nil {
		t.Fatalf("BeginFrame: %v", err)
	}
	if !s.KeyDown('z') {
		t.Error("injected key not read")
	}
	s.DrawRectangle(1, 1, 2, 2, terminal.Red, terminal.Red)
	s.DrawText("ok", 5, 0, terminal.White, terminal.Blank)
	if err := s.EndFrame(); err != nil {
		t.Fatalf("EndFrame: %v", err)
	}

	cells, w, _ := screen.GetContents()
	_, bg, _ := cells[1*w+1].Style.Decompose()
	if bg != tcell.PaletteColor(int(terminal.PaletteRed)+8) {
		t.Errorf("rectangle bg = %v, want bright red", bg)
	}
	if c := cells[5]; len(c.Runes) == 0 || c.Runes[0] != 'o' {
		t.Errorf("text cell = %v, want 'o'", c.Runes)
	}

	// Simulated resize is fatal on the next frame
	screen.SetSize(60, 20)
	if err := s.BeginFrame(); !IsFatal(err) {
		t.Errorf("BeginFrame after resize = %v, want fatal", err)
	}
}
