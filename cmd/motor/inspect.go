package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/motorwasm/motor"
	"github.com/motorwasm/motor/wasm"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <module.wasm>",
	Short: "Print the parsed module structure without executing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		module, err := motor.Parse(input)
		if err != nil {
			return err
		}
		printModule(cmd.OutOrStdout(), module)
		return nil
	},
}

var sectionName = color.New(color.FgCyan, color.Bold).SprintFunc()

func printModule(w io.Writer, m *wasm.Module) {
	fmt.Fprintf(w, "module: version %d, %d sections\n", m.Version, len(m.Sections))
	for _, s := range m.Sections {
		switch sec := s.(type) {
		case *wasm.CustomSection:
			fmt.Fprintf(w, "  %s: name %q\n", sectionName("custom"), sec.Name)
		case *wasm.TypeSection:
			fmt.Fprintf(w, "  %s: %d entries\n", sectionName("type"), len(sec.Entries))
			for _, ft := range sec.Entries {
				fmt.Fprintf(w, "    %s\n", formatFunctionType(ft))
			}
		case *wasm.FunctionSection:
			fmt.Fprintf(w, "  %s: type indices %v\n", sectionName("function"), sec.Types)
		case *wasm.MemorySection:
			fmt.Fprintf(w, "  %s: %d entries\n", sectionName("memory"), len(sec.Entries))
			for _, mt := range sec.Entries {
				if mt.Limits.Max != nil {
					fmt.Fprintf(w, "    initial %d pages, max %d pages\n", mt.Limits.Initial, *mt.Limits.Max)
				} else {
					fmt.Fprintf(w, "    initial %d pages\n", mt.Limits.Initial)
				}
			}
		case *wasm.ExportSection:
			fmt.Fprintf(w, "  %s: %d entries\n", sectionName("export"), len(sec.Entries))
			for _, e := range sec.Entries {
				fmt.Fprintf(w, "    %q %s index %d\n", e.Name, wasm.ExternalKindName(e.Kind), e.Index)
			}
		case *wasm.StartSection:
			fmt.Fprintf(w, "  %s: function index %d\n", sectionName("start"), sec.Index)
		case *wasm.CodeSection:
			fmt.Fprintf(w, "  %s: %d bodies\n", sectionName("code"), len(sec.Bodies))
			for i, b := range sec.Bodies {
				fmt.Fprintf(w, "    body %d: %d local entries, %d bytes of code\n", i, len(b.Locals), len(b.Code))
			}
		case *wasm.UnknownSection:
			fmt.Fprintf(w, "  %s: id %d (%s)\n", sectionName("skipped"), sec.ID, wasm.SectionIDName(sec.ID))
		}
	}
}

func formatFunctionType(ft *wasm.FunctionType) string {
	params := make([]string, len(ft.Params))
	for i, p := range ft.Params {
		params[i] = wasm.ValueTypeName(p)
	}
	sig := "func(" + strings.Join(params, ", ") + ")"
	if ft.Result != nil {
		sig += " -> " + wasm.ValueTypeName(*ft.Result)
	}
	return sig
}
