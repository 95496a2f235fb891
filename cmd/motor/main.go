// Command motor runs WebAssembly programs: `motor run` JIT-compiles and
// invokes a module's start function, `motor inspect` prints the parsed
// module structure instead of executing it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/motorwasm/motor"
	"github.com/motorwasm/motor/wasm/jit"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "motor",
	Short:         "Motor is a runtime for executing WebAssembly programs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		jit.SetLogger(logger)
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <module.wasm>",
	Short: "JIT-compile and invoke a module's start function",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		return motor.Run(input)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd, inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "motor:", err)
		os.Exit(1)
	}
}
