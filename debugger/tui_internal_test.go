package debugger

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lookbusy1344/rv32-emulator/cpu"
	"github.com/lookbusy1344/rv32-emulator/hostif"
	"github.com/lookbusy1344/rv32-emulator/interp"
)

func newTestTUI() *TUI {
	c := cpu.New(0)
	mem := hostif.NewFlatMemory()
	clock := hostif.NewSimpleClock()
	it := interp.New(c, mem, clock)
	dbg := NewDebugger(it)
	return NewTUI(dbg)
}

// TestExecuteCommandReturns tests that executeCommand completes
// promptly and does not deadlock against the output view.
func TestExecuteCommandReturns(t *testing.T) {
	tui := newTestTUI()

	done := make(chan bool, 1)
	go func() {
		tui.executeCommand("help")
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(time.Second * 2):
		t.Fatal("executeCommand blocked for more than 2 seconds - deadlock detected")
	}
}

// TestHandleCommandReturns tests that handleCommand returns promptly
// when fed a synthetic Enter key event.
func TestHandleCommandReturns(t *testing.T) {
	tui := newTestTUI()
	tui.CommandInput.SetText("help")

	done := make(chan bool, 1)
	go func() {
		tui.handleCommand(tcell.KeyEnter)
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(time.Millisecond * 200):
		t.Fatal("handleCommand blocked for more than 200ms")
	}
}
