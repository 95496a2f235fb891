package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/motorwasm/motor/wasm"
)

func TestPrintModule(t *testing.T) {
	color.NoColor = true

	i32 := wasm.ValueTypeI32
	max := uint32(2)
	m := &wasm.Module{
		Version: 1,
		Sections: []wasm.Section{
			&wasm.CustomSection{Name: "name"},
			&wasm.TypeSection{Entries: []*wasm.FunctionType{
				{Params: []wasm.ValueType{i32, i32}, Result: &i32},
			}},
			&wasm.FunctionSection{Types: []uint32{0}},
			&wasm.MemorySection{Entries: []*wasm.MemoryType{
				{Limits: wasm.ResizableLimits{Initial: 1, Max: &max}},
			}},
			&wasm.ExportSection{Entries: []*wasm.ExportEntry{
				{Name: "main", Kind: wasm.ExternalKindFunction, Index: 0},
			}},
			&wasm.StartSection{Index: 0},
			&wasm.CodeSection{Bodies: []*wasm.FunctionBody{
				{Code: []byte{wasm.OpcodeReturn}},
			}},
			&wasm.UnknownSection{ID: wasm.SectionIDData},
		},
	}

	var out bytes.Buffer
	printModule(&out, m)

	exp := `module: version 1, 8 sections
  custom: name "name"
  type: 1 entries
    func(i32, i32) -> i32
  function: type indices [0]
  memory: 1 entries
    initial 1 pages, max 2 pages
  export: 1 entries
    "main" func index 0
  start: function index 0
  code: 1 bodies
    body 0: 0 local entries, 1 bytes of code
  skipped: id 11 (data)
`
	require.Equal(t, exp, out.String())
}

func TestFormatFunctionType(t *testing.T) {
	f64 := wasm.ValueTypeF64
	require.Equal(t, "func()", formatFunctionType(&wasm.FunctionType{}))
	require.Equal(t, "func(f64) -> f64", formatFunctionType(&wasm.FunctionType{
		Params: []wasm.ValueType{f64},
		Result: &f64,
	}))
}
