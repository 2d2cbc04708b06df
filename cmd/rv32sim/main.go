package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lookbusy1344/rv32-emulator/config"
	"github.com/lookbusy1344/rv32-emulator/cpu"
	"github.com/lookbusy1344/rv32-emulator/debugger"
	"github.com/lookbusy1344/rv32-emulator/hostif"
	"github.com/lookbusy1344/rv32-emulator/interp"
	"github.com/lookbusy1344/rv32-emulator/loader"
	"github.com/lookbusy1344/rv32-emulator/viewer"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		debugMode   = flag.Bool("debug", false, "Start in debugger mode (CLI)")
		tuiMode     = flag.Bool("tui", false, "Start in TUI debugger mode")
		guiMode     = flag.Bool("gui", false, "Start the register/memory viewer window")
		verboseMode = flag.Bool("verbose", false, "Verbose output")

		configFile = flag.String("config", "", "Config file path (default: platform config dir)")
		entryFlag  = flag.String("entry", "", "Override entry point address (hex or decimal; default: ELF entry)")
		maxInsns   = flag.Uint64("max-instructions", 0, "Maximum instructions before halt (0: use config default)")

		dumpSymbols = flag.Bool("dump-symbols", false, "Dump the ELF symbol table and exit")
		symbolsFile = flag.String("symbols-file", "", "Symbol dump output file (default: stdout)")

		enableStats = flag.Bool("stats", false, "Print execution statistics after a direct run")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("rv32sim %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	elfFile := flag.Arg(0)
	if _, err := os.Stat(elfFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", elfFile)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *dumpSymbols {
		if err := dumpSymbolTable(elfFile, *symbolsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error dumping symbols: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *verboseMode {
		fmt.Printf("Loading ELF image: %s\n", elfFile)
	}

	mem := hostif.NewFlatMemory()
	if cfg.Memory.DataSize > 0 {
		mem.AddSegment("data", cfg.Memory.DataBase, cfg.Memory.DataSize, hostif.PermRead|hostif.PermWrite)
	}
	if cfg.Memory.StackSize > 0 {
		mem.AddSegment("stack", cfg.Memory.StackBase, cfg.Memory.StackSize, hostif.PermRead|hostif.PermWrite)
	}

	result, err := loader.LoadELF(elfFile, mem)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ELF: %v\n", err)
		os.Exit(1)
	}

	entryAddr := result.EntryPoint
	if *entryFlag != "" {
		entryAddr, err = parseAddress(*entryFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid entry point: %v\n", err)
			os.Exit(1)
		}
	}

	symbols, err := loader.LoadSymbols(elfFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading symbol table: %v\n", err)
		os.Exit(1)
	}

	quota := cfg.Execution.MaxInstructions
	if *maxInsns > 0 {
		quota = *maxInsns
	}

	c := cpu.New(entryAddr)
	clock := hostif.NewSimpleClock()
	clock.MaxInstructions = quota
	it := interp.New(c, mem, clock)
	it.Extensions = interp.Extensions{
		M: cfg.Extensions.M,
		A: cfg.Extensions.A,
		F: cfg.Extensions.F,
		D: cfg.Extensions.D,
		C: cfg.Extensions.C,
	}

	if *verboseMode {
		fmt.Printf("Entry point: 0x%08X\n", entryAddr)
		fmt.Printf("Code range: 0x%08X - 0x%08X\n", result.LowAddr, result.HighAddr)
		fmt.Printf("Instruction quota: %d\n", quota)
		fmt.Printf("Symbols: %d\n", len(symbols))
	}

	switch {
	case *tuiMode, *debugMode:
		dbg := debugger.NewDebugger(it)
		dbg.LoadSymbols(symbols)

		if *tuiMode {
			if err := debugger.RunTUI(dbg); err != nil {
				fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Println("rv32sim Debugger - type 'help' for commands")
			fmt.Printf("Program loaded: %s\n", elfFile)
			fmt.Println()

			if err := debugger.RunCLI(dbg); err != nil {
				fmt.Fprintf(os.Stderr, "Debugger error: %v\n", err)
				os.Exit(1)
			}
		}

	case *guiMode:
		dbg := debugger.NewDebugger(it)
		dbg.LoadSymbols(symbols)

		if err := viewer.Run(dbg); err != nil {
			fmt.Fprintf(os.Stderr, "Viewer error: %v\n", err)
			os.Exit(1)
		}

	default:
		runDirect(it, elfFile, *verboseMode, *enableStats)
	}
}

// runDirect executes the loaded program to completion with no
// debugger or viewer attached, reporting the stop reason on exit.
func runDirect(it *interp.Interpreter, elfFile string, verbose, stats bool) {
	if verbose {
		fmt.Println("\nStarting execution...")
		fmt.Println("----------------------------------------")
	}

	err := it.Run(0)

	var stop *interp.StopError
	exitCode := 0
	switch {
	case err == nil:
		// Run only returns nil if maxSteps was reached, which cannot
		// happen here since maxSteps is 0 (unbounded).
	case errors.As(err, &stop):
		switch stop.Kind {
		case interp.StopEcall, interp.StopEbreak:
			if verbose {
				fmt.Printf("\nProgram stopped: %s at pc=0x%08X\n", stop.Kind, stop.PC)
			}
		default:
			fmt.Fprintf(os.Stderr, "\nRuntime error at pc=0x%08X: %s\n", stop.PC, stop.Kind)
			exitCode = 1
		}
	default:
		fmt.Fprintf(os.Stderr, "\nUnexpected error: %v\n", err)
		exitCode = 1
	}

	if verbose || stats {
		fmt.Println("----------------------------------------")
		fmt.Printf("Execution complete: %s\n", elfFile)
		fmt.Printf("PC: 0x%08X\n", it.CPU.PC)
		fmt.Printf("Cycles: %d\n", it.Clock.ReadCycle())
		fmt.Printf("Instructions retired: %d\n", it.Clock.ReadInstret())
	}

	os.Exit(exitCode)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func parseAddress(s string) (uint32, error) {
	var addr uint32
	if _, err := fmt.Sscanf(s, "0x%x", &addr); err == nil {
		return addr, nil
	}
	if _, err := fmt.Sscanf(s, "%d", &addr); err == nil {
		return addr, nil
	}
	return 0, fmt.Errorf("cannot parse address: %s", s)
}

func dumpSymbolTable(elfFile, outFile string) error {
	symbols, err := loader.LoadSymbols(elfFile)
	if err != nil {
		return fmt.Errorf("reading symbols: %w", err)
	}

	var w *os.File
	if outFile == "" {
		w = os.Stdout
	} else {
		w, err = os.Create(outFile) // #nosec G304 -- user-specified symbol output path
		if err != nil {
			return fmt.Errorf("creating symbol file: %w", err)
		}
		defer w.Close()
	}

	if len(symbols) == 0 {
		fmt.Fprintln(w, "No symbols defined")
		return nil
	}

	names := make([]string, 0, len(symbols))
	for name := range symbols {
		names = append(names, name)
	}
	sortStrings(names, symbols)

	fmt.Fprintln(w, "Symbol Table")
	fmt.Fprintln(w, "============")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-30s %s\n", "Name", "Address")
	fmt.Fprintln(w, "--------------------------------------------------------------")
	for _, name := range names {
		fmt.Fprintf(w, "%-30s 0x%08X\n", name, symbols[name])
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total symbols: %d\n", len(symbols))

	return nil
}

// sortStrings sorts names by their mapped address, ascending.
func sortStrings(names []string, symbols map[string]uint32) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && symbols[names[j-1]] > symbols[names[j]]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
}

func printHelp() {
	fmt.Printf(`rv32sim %s - RV32G[C] interpreter

Usage: rv32sim [options] <elf-file>

Options:
  -help                Show this help message
  -version             Show version information
  -debug               Start in debugger mode (CLI)
  -tui                 Start in TUI debugger mode
  -gui                 Start the register/memory viewer window
  -config FILE         Config file path (default: platform config dir)
  -entry ADDR          Override entry point address (default: ELF entry)
  -max-instructions N  Maximum instructions before halt (default: from config)
  -verbose             Enable verbose output
  -stats               Print execution statistics after a direct run

Symbol Options:
  -dump-symbols        Dump the ELF symbol table and exit
  -symbols-file FILE   Symbol dump output file (default: stdout)

Examples:
  # Run an ELF binary directly
  rv32sim program.elf

  # Run with the command-line debugger
  rv32sim -debug program.elf

  # Run with the TUI debugger
  rv32sim -tui program.elf

  # Run with the register/memory viewer
  rv32sim -gui program.elf

  # Run with a custom instruction quota and verbose output
  rv32sim -max-instructions 5000000 -verbose program.elf

  # Dump symbol table
  rv32sim -dump-symbols program.elf

Debugger Commands (when in -debug mode):
  run, r             Start/restart program execution
  continue, c        Continue execution
  step, s            Execute single instruction
  next, n            Step over function calls
  break ADDR         Set breakpoint at address/label
  info registers     Show all registers
  print EXPR         Evaluate and print expression
  help               Show debugger help

Type 'help' at the debugger prompt for the full command list.
`, Version)
}
