//go:build windows

package terminal

import (
	"errors"
	"testing"

	"golang.org/x/sys/windows"
)

func TestWindowsInitCtrlHandler(t *testing.T) {
	tests := []struct {
		name        string
		installErr  error
		wantHandler bool
	}{
		{"installed", nil, true},
		{"install fails", errors.New("denied"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be, err := newNativeBackend()
			if err != nil {
				t.Skipf("no console handles: %v", err)
			}
			b := be.(*windowsBackend)
			var consoleMode uint32
			if windows.GetConsoleMode(b.in, &consoleMode) != nil {
				t.Skip("stdin is not a console")
			}

			var calls []bool
			orig := setCtrlHandler
			setCtrlHandler = func(add bool) error {
				calls = append(calls, add)
				if add {
					return tt.installErr
				}
				return nil
			}
			defer func() { setCtrlHandler = orig }()

			if err := b.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			if !b.active {
				t.Fatal("backend not active after Init")
			}
			if b.handler != tt.wantHandler {
				t.Errorf("handler = %v, want %v", b.handler, tt.wantHandler)
			}

			b.Fini()
			var mode uint32
			windows.GetConsoleMode(b.in, &mode)
			if mode != b.oldInMode {
				t.Errorf("input mode after Fini = %#x, want %#x", mode, b.oldInMode)
			}
			wantCalls := 1
			if tt.wantHandler {
				wantCalls = 2
			}
			if len(calls) != wantCalls {
				t.Errorf("handler calls = %v, want %d", calls, wantCalls)
			}
		})
	}
}
