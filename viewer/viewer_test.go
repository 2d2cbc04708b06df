package viewer

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/lookbusy1344/rv32-emulator/cpu"
	"github.com/lookbusy1344/rv32-emulator/debugger"
	"github.com/lookbusy1344/rv32-emulator/hostif"
	"github.com/lookbusy1344/rv32-emulator/interp"
)

func newTestViewer() *Viewer {
	c := cpu.New(0x1000)
	mem := hostif.NewFlatMemory()
	mem.AddSegment("data", 0x00020000, 0x1000, hostif.PermRead|hostif.PermWrite)
	clock := hostif.NewSimpleClock()
	it := interp.New(c, mem, clock)
	dbg := debugger.NewDebugger(it)

	testApp := test.NewApp()
	v := &Viewer{
		Debugger: dbg,
		App:      testApp,
		Window:   testApp.NewWindow("test"),
	}
	v.initializeViews()
	v.buildLayout()
	v.buildToolbar()
	return v
}

func TestViewerCreation(t *testing.T) {
	v := newTestViewer()
	defer v.App.Quit()

	if v.RegisterView == nil {
		t.Error("RegisterView not initialized")
	}
	if v.MemoryView == nil {
		t.Error("MemoryView not initialized")
	}
	if v.ConsoleView == nil {
		t.Error("ConsoleView not initialized")
	}
	if v.Toolbar == nil {
		t.Error("Toolbar not initialized")
	}
}

func TestViewerUpdateRegisters(t *testing.T) {
	v := newTestViewer()
	defer v.App.Quit()

	v.Debugger.Interp.CPU.SetX(10, 42)
	v.updateRegisters()

	text := v.RegisterView.Text()
	if text == "" {
		t.Fatal("register view has no content")
	}
	if !strings.Contains(text, "x10=") {
		t.Error("register view does not show x10")
	}
	if !strings.Contains(text, "pc =") {
		t.Error("register view does not show pc")
	}
}

func TestViewerUpdateMemory(t *testing.T) {
	v := newTestViewer()
	defer v.App.Quit()

	addr := uint32(0x00020000)
	v.Debugger.Interp.Mem.StoreWord(addr, 0xDEADBEEF)
	v.MemoryAddress = addr
	v.updateMemory()

	text := v.MemoryView.Text()
	if !strings.Contains(text, "EF BE AD DE") {
		t.Errorf("memory view does not show stored bytes: %s", text)
	}
}

func TestViewerStep(t *testing.T) {
	v := newTestViewer()
	defer v.App.Quit()

	startPC := v.Debugger.Interp.CPU.PC
	v.step()

	if v.Debugger.Interp.CPU.PC == startPC && !v.Debugger.Halted {
		t.Error("step did not advance pc and did not halt")
	}
}

func TestViewerStop(t *testing.T) {
	v := newTestViewer()
	defer v.App.Quit()

	v.Debugger.Running = true
	v.stop()

	if v.Debugger.Running {
		t.Error("stop did not clear Running")
	}
}
