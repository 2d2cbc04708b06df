package debugger

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lookbusy1344/rv32-emulator/interp"
)

// RunCLI runs the command-line debugger interface
func RunCLI(dbg *Debugger) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("(rv32-dbg) ")

		if !scanner.Scan() {
			break
		}

		cmdLine := strings.TrimSpace(scanner.Text())

		if cmdLine == "quit" || cmdLine == "q" || cmdLine == "exit" {
			fmt.Println("Exiting debugger...")
			break
		}

		if err := dbg.ExecuteCommand(cmdLine); err != nil {
			fmt.Printf("Error: %v\n", err)
		}

		if output := dbg.GetOutput(); output != "" {
			fmt.Print(output)
		}

		if dbg.Running {
			for dbg.Running {
				if shouldBreak, reason := dbg.ShouldBreak(); shouldBreak {
					dbg.Running = false
					fmt.Printf("Stopped: %s at pc=0x%08X\n", reason, dbg.Interp.CPU.PC)
					break
				}

				if err := dbg.Interp.Step(); err != nil {
					dbg.Running = false
					var stop *interp.StopError
					if errors.As(err, &stop) {
						dbg.Halted = true
						dbg.StopReason = err
						fmt.Printf("Stopped: %s at pc=0x%08X\n", stop.Kind, stop.PC)
					} else {
						fmt.Printf("Runtime error: %v\n", err)
					}
					break
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input error: %w", err)
	}

	return nil
}

// RunTUI runs the TUI (Text User Interface) debugger
func RunTUI(dbg *Debugger) error {
	tui := NewTUI(dbg)
	return tui.Run()
}
