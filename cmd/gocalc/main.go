// Package main provides the CLI interface for the gocalc calculator.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gosuri/uilive"
	"github.com/spf13/cobra"

	"github.com/aryanc-04/gocalc/internal/config"
	"github.com/aryanc-04/gocalc/internal/history"
	"github.com/aryanc-04/gocalc/internal/repl"
	"github.com/aryanc-04/gocalc/internal/report"
	"github.com/aryanc-04/gocalc/internal/watch"
	"github.com/aryanc-04/gocalc/pkg/calc"
	"github.com/aryanc-04/gocalc/pkg/mathutil"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gocalc",
	Short: "A basic arithmetic calculator with memory and history",
	Long: `gocalc is an interactive calculator for the terminal.
It performs the four basic arithmetic operations with a single-slot memory
register, tracks the last computed result, and journals operations for later
inspection.

Features:
- Interactive menu-driven session
- One-shot evaluation for scripts
- Math utilities (factorial, power, angle conversion)
- Operation history with text and JSON reports
- Live config reload while the session runs`,
	RunE: runREPL,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive calculator session",
	Long:  "Start the interactive menu-driven calculator session (the default command)",
	RunE:  runREPL,
}

var evalCmd = &cobra.Command{
	Use:   "eval <operation> <a> <b>",
	Short: "Evaluate a single operation and exit",
	Long:  "Evaluate one arithmetic operation (add, subtract, multiply, divide) and print the result",
	Args:  cobra.ExactArgs(3),
	RunE:  runEval,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("gocalc version 0.1.0")
	},
}

var mathCmd = &cobra.Command{
	Use:   "math",
	Short: "Math utility functions",
	Long:  "One-shot math utility functions (factorial, power, angle conversion)",
}

var mathFactorialCmd = &cobra.Command{
	Use:   "factorial <n>",
	Short: "Compute n!",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid integer %q", args[0])
		}

		result, err := mathutil.Factorial(n)
		if err != nil {
			return err
		}

		fmt.Printf("Result: %s\n", report.FormatValue(result, cfg.Calc.Precision))

		return nil
	},
}

var mathPowerCmd = &cobra.Command{
	Use:   "power <base> <exponent>",
	Short: "Compute base raised to an integer exponent",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		base, err := parseOperand(args[0])
		if err != nil {
			return err
		}

		exponent, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid integer %q", args[1])
		}

		result, err := mathutil.Power(base, exponent)
		if err != nil {
			return err
		}

		fmt.Printf("Result: %s\n", report.FormatValue(result, cfg.Calc.Precision))

		return nil
	},
}

var mathRadiansCmd = &cobra.Command{
	Use:   "radians <degrees>",
	Short: "Convert degrees to radians",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		degrees, err := parseOperand(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Result: %s\n", report.FormatValue(mathutil.DegreeToRadian(degrees), cfg.Calc.Precision))

		return nil
	},
}

var mathDegreesCmd = &cobra.Command{
	Use:   "degrees <radians>",
	Short: "Convert radians to degrees",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		radians, err := parseOperand(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Result: %s\n", report.FormatValue(mathutil.RadianToDegree(radians), cfg.Calc.Precision))

		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the operation journal",
	Long:  "Commands for inspecting and maintaining the operation journal",
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the operation journal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := history.New(cfg.History.File, history.WithLimit(cfg.History.Limit))
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		format, _ := cmd.Flags().GetString("format")

		entries := store.Entries()
		if limit > 0 {
			entries = store.Recent(limit)
		}

		return report.New(cfg.Calc.Precision).Generate(os.Stdout, entries, store.Stats(), format)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all journal entries",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := history.New(cfg.History.File, history.WithLimit(cfg.History.Limit))
		if err != nil {
			return err
		}

		if err := store.Clear(); err != nil {
			return err
		}

		fmt.Println("✅ History cleared")

		return nil
	},
}

var historyFollowCmd = &cobra.Command{
	Use:   "follow",
	Short: "Watch the journal and render updates live",
	Long:  "Render the newest journal entries and refresh in place whenever the journal file changes",
	RunE:  runHistoryFollow,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gocalc configuration",
	Long:  "Commands for managing gocalc configuration files",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new gocalc configuration file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		filename := config.DefaultFileName

		// Check if file already exists
		if _, err := os.Stat(filename); err == nil && !force {
			return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", filename)
		}

		cfg := config.Default()
		if err := cfg.Save(filename); err != nil {
			return err
		}

		fmt.Printf("✅ Created %s\n", filename)
		fmt.Printf("💡 Edit the file to customize epsilon, precision and history settings\n")

		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate configuration file",
	RunE: func(_ *cobra.Command, args []string) error {
		configFile := ""
		if len(args) > 0 {
			configFile = args[0]
		}

		_, err := config.Load(configFile)
		if err != nil {
			fmt.Printf("❌ Configuration validation failed: %v\n", err)

			return err
		}

		fmt.Printf("✅ Configuration is valid\n")

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .gocalc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(mathCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Math subcommands
	mathCmd.AddCommand(mathFactorialCmd)
	mathCmd.AddCommand(mathPowerCmd)
	mathCmd.AddCommand(mathRadiansCmd)
	mathCmd.AddCommand(mathDegreesCmd)

	// History subcommands
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyFollowCmd)

	// Config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	// Config init flags
	configInitCmd.Flags().Bool("force", false, "overwrite existing config file")

	// History show flags
	historyShowCmd.Flags().Int("limit", 0, "show only the newest N entries (0 shows all)")
	historyShowCmd.Flags().String("format", "text", "output format (text, json)")
}

// loadConfig loads the configuration honoring the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		cfg.Verbose = true
	}

	return cfg, nil
}

// openStore opens the journal when history is enabled.
func openStore(cfg *config.Config) (*history.Store, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}

	store, err := history.New(cfg.History.File, history.WithLimit(cfg.History.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}

	return store, nil
}

func parseOperand(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", arg)
	}

	return v, nil
}

func runREPL(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	var opts []repl.Option
	if store != nil {
		opts = append(opts, repl.WithStore(store))
	}

	session := repl.New(cfg, opts...)

	if cfg.REPL.WatchConfig {
		if path := config.Path(configFile); path != "" {
			watcher, err := watch.New(path, func() {
				reloaded, err := config.Load(configFile)
				if err != nil {
					log.Printf("Warning: failed to reload config: %v", err)

					return
				}

				if verbose {
					reloaded.Verbose = true
				}

				session.UpdateConfig(reloaded)
			})
			if err != nil {
				log.Printf("Warning: config watch unavailable: %v", err)
			} else {
				watcher.Start()
				defer watcher.Stop()
			}
		}
	}

	return session.Run()
}

func runEval(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	operation := strings.ToLower(args[0])

	a, err := parseOperand(args[1])
	if err != nil {
		return err
	}

	b, err := parseOperand(args[2])
	if err != nil {
		return err
	}

	calculator := calc.New(calc.WithEpsilon(cfg.Calc.Epsilon))

	result, err := applyOperation(calculator, operation, a, b)
	if err != nil {
		return err
	}

	fmt.Printf("Result: %s\n", report.FormatValue(result, cfg.Calc.Precision))

	store, err := openStore(cfg)
	if err != nil {
		log.Printf("Warning: %v", err)

		return nil
	}

	if store != nil {
		store.Append(operation, a, b, result)

		if err := store.Save(); err != nil {
			log.Printf("Warning: failed to save history: %v", err)
		}
	}

	return nil
}

func applyOperation(calculator *calc.Calculator, operation string, a, b float64) (float64, error) {
	switch operation {
	case "add":
		return calculator.Add(a, b)
	case "subtract":
		return calculator.Subtract(a, b)
	case "multiply":
		return calculator.Multiply(a, b)
	case "divide":
		return calculator.Divide(a, b)
	default:
		return 0, fmt.Errorf("unknown operation %q (want add, subtract, multiply or divide)", operation)
	}
}

func runHistoryFollow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Watching history. Press Ctrl+C to exit.")

	writer := uilive.New()
	writer.RefreshInterval = time.Millisecond * 100
	writer.Start()
	defer writer.Stop()

	render := func() {
		store, err := history.New(cfg.History.File, history.WithLimit(cfg.History.Limit))
		if err != nil {
			fmt.Fprintf(writer, "Error reading history: %v\n", err)
			writer.Flush()

			return
		}

		var buf bytes.Buffer
		if err := report.New(cfg.Calc.Precision).Generate(&buf, store.Recent(10), store.Stats(), "text"); err != nil {
			fmt.Fprintf(writer, "Error rendering history: %v\n", err)
			writer.Flush()

			return
		}

		fmt.Fprint(writer, buf.String())
		writer.Flush()
	}

	render()

	watcher, err := watch.New(cfg.History.File, render)
	if err != nil {
		return err
	}

	watcher.SetDebounceDelay(200 * time.Millisecond)
	watcher.Start()
	defer watcher.Stop()

	// Wait for interrupt signal
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	<-signalChan

	fmt.Println("\nShutting down...")

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
