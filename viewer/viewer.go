// Package viewer provides a minimal graphical register and memory
// viewer for a running interpreter. It is a read-only companion to
// the debugger CLI/TUI: it shows live CPU and memory state but does
// not accept commands, it only steps, runs, and refreshes.
package viewer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/lookbusy1344/rv32-emulator/debugger"
	"github.com/lookbusy1344/rv32-emulator/interp"
)

// Viewer is a small fyne window showing registers, memory, and
// console output for an interpreter under debugger control.
type Viewer struct {
	Debugger *debugger.Debugger
	App      fyne.App
	Window   fyne.Window

	RegisterView *widget.TextGrid
	MemoryView   *widget.TextGrid
	ConsoleView  *widget.TextGrid
	StatusLabel  *widget.Label
	Toolbar      *widget.Toolbar

	MemoryAddress uint32

	consoleBuffer strings.Builder
	consoleMutex  sync.Mutex
}

// Run opens the viewer window and blocks until it is closed.
func Run(dbg *debugger.Debugger) error {
	v := newViewer(dbg)
	v.Window.ShowAndRun()
	return nil
}

func newViewer(dbg *debugger.Debugger) *Viewer {
	myApp := app.New()
	myWindow := myApp.NewWindow("rv32sim Viewer")

	v := &Viewer{
		Debugger: dbg,
		App:      myApp,
		Window:   myWindow,
	}

	v.initializeViews()
	v.buildLayout()
	v.buildToolbar()

	myWindow.Resize(fyne.NewSize(900, 650))

	return v
}

func (v *Viewer) initializeViews() {
	v.RegisterView = widget.NewTextGrid()
	v.updateRegisters()

	v.MemoryView = widget.NewTextGrid()
	v.updateMemory()

	v.ConsoleView = widget.NewTextGrid()
	v.ConsoleView.SetText("")

	v.StatusLabel = widget.NewLabel("Ready")
}

func (v *Viewer) buildLayout() {
	registerPanel := container.NewBorder(
		widget.NewLabel("Registers"),
		nil, nil, nil,
		container.NewScroll(v.RegisterView),
	)

	memoryPanel := container.NewBorder(
		widget.NewLabel("Memory"),
		nil, nil, nil,
		container.NewScroll(v.MemoryView),
	)

	consolePanel := container.NewBorder(
		widget.NewLabel("Console"),
		nil, nil, nil,
		container.NewScroll(v.ConsoleView),
	)

	tabs := container.NewAppTabs(
		container.NewTabItem("Memory", memoryPanel),
		container.NewTabItem("Console", consolePanel),
	)

	mainSplit := container.NewHSplit(registerPanel, tabs)
	mainSplit.SetOffset(0.4)

	statusBar := container.NewBorder(nil, nil, nil, nil, v.StatusLabel)

	content := container.NewBorder(
		v.Toolbar,
		statusBar,
		nil, nil,
		mainSplit,
	)

	v.Window.SetContent(content)
}

func (v *Viewer) buildToolbar() {
	v.Toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.MediaSkipNextIcon(), func() {
			v.step()
		}),
		widget.NewToolbarAction(theme.MediaPlayIcon(), func() {
			v.run()
		}),
		widget.NewToolbarAction(theme.MediaStopIcon(), func() {
			v.stop()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() {
			v.refresh()
		}),
	)
}

func (v *Viewer) refresh() {
	v.updateRegisters()
	v.updateMemory()
	v.updateConsole()
}

func (v *Viewer) updateRegisters() {
	var sb strings.Builder
	c := v.Debugger.Interp.CPU

	sb.WriteString("Integer registers:\n")
	sb.WriteString("──────────────────\n")
	for i := 0; i < 32; i += 4 {
		for j := 0; j < 4; j++ {
			reg := i + j
			sb.WriteString(fmt.Sprintf("x%-2d=%08X ", reg, c.GetX(reg)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\npc =%08X   fcsr=%08X   cycles=%d\n", c.PC, c.FCSR, c.Cycles))

	v.RegisterView.SetText(sb.String())
}

func (v *Viewer) updateMemory() {
	var sb strings.Builder

	addr := v.MemoryAddress
	if addr == 0 {
		addr = v.Debugger.Interp.CPU.PC
	}
	addr &= 0xFFFFFFF0

	sb.WriteString(fmt.Sprintf("Memory at 0x%08X:\n", addr))
	sb.WriteString("──────────────────────────────────────────────────\n")

	mem := v.Debugger.Interp.Mem
	for i := uint32(0); i < 16; i++ {
		lineAddr := addr + i*16
		sb.WriteString(fmt.Sprintf("%08X: ", lineAddr))

		var ascii strings.Builder
		for j := uint32(0); j < 16; j++ {
			b, ok := mem.LoadByte(lineAddr + j)
			if ok {
				sb.WriteString(fmt.Sprintf("%02X ", b))
				if b >= 32 && b < 127 {
					ascii.WriteByte(b)
				} else {
					ascii.WriteByte('.')
				}
			} else {
				sb.WriteString("?? ")
				ascii.WriteByte('?')
			}
		}
		sb.WriteString(" ")
		sb.WriteString(ascii.String())
		sb.WriteString("\n")
	}

	v.MemoryView.SetText(sb.String())
}

func (v *Viewer) updateConsole() {
	v.consoleMutex.Lock()
	defer v.consoleMutex.Unlock()

	if output := v.Debugger.GetOutput(); output != "" {
		v.consoleBuffer.WriteString(output)
	}
	v.ConsoleView.SetText(v.consoleBuffer.String())
}

func (v *Viewer) step() {
	if v.Debugger.Halted {
		v.StatusLabel.SetText("Program has halted")
		return
	}

	if err := v.Debugger.Interp.Step(); err != nil {
		v.handleStopError(err)
	} else {
		v.StatusLabel.SetText(fmt.Sprintf("Stepped to pc=0x%08X", v.Debugger.Interp.CPU.PC))
	}

	v.refresh()
}

func (v *Viewer) run() {
	if v.Debugger.Halted {
		v.StatusLabel.SetText("Program has halted")
		return
	}

	v.Debugger.Running = true
	v.StatusLabel.SetText("Running...")

	go func() {
		for v.Debugger.Running {
			if shouldBreak, reason := v.Debugger.ShouldBreak(); shouldBreak {
				v.Debugger.Running = false
				v.StatusLabel.SetText(fmt.Sprintf("Stopped: %s at pc=0x%08X", reason, v.Debugger.Interp.CPU.PC))
				v.refresh()
				return
			}

			if err := v.Debugger.Interp.Step(); err != nil {
				v.Debugger.Running = false
				v.handleStopError(err)
				v.refresh()
				return
			}
		}
	}()
}

func (v *Viewer) stop() {
	v.Debugger.Running = false
	v.StatusLabel.SetText("Stopped")
	v.refresh()
}

func (v *Viewer) handleStopError(err error) {
	var stop *interp.StopError
	if errors.As(err, &stop) {
		v.Debugger.Halted = true
		v.Debugger.StopReason = err
		v.StatusLabel.SetText(fmt.Sprintf("Stopped: %s at pc=0x%08X", stop.Kind, stop.PC))
	} else {
		v.StatusLabel.SetText(fmt.Sprintf("Runtime error: %v", err))
	}
}
