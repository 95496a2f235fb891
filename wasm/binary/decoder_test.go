package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/motorwasm/motor/wasm"
	"github.com/motorwasm/motor/wasm/leb128"
)

var header = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

// section prepends the id and the payload length to contents.
func section(id wasm.SectionID, contents []byte) []byte {
	out := append([]byte{id}, leb128.EncodeUint32(uint32(len(contents)))...)
	return append(out, contents...)
}

func module(sections ...[]byte) []byte {
	out := append([]byte{}, header...)
	for _, s := range sections {
		out = append(out, s...)
	}
	return out
}

func TestDecodeModule_Header(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		_, err := DecodeModule([]byte{0x01, 0x02, 0x03, 0x04, 0x01, 0x00, 0x00, 0x00})
		var bad *BadMagicError
		require.ErrorAs(t, err, &bad)
		require.Equal(t, uint32(0x04030201), bad.Actual)
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := DecodeModule([]byte{0x00, 0x61, 0x73, 0x6d, 0x02, 0x00, 0x00, 0x00})
		var unsupported *UnsupportedVersionError
		require.ErrorAs(t, err, &unsupported)
		require.Equal(t, uint32(2), unsupported.Actual)
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := DecodeModule([]byte{0x00, 0x61})
		require.Error(t, err)
	})

	t.Run("empty module", func(t *testing.T) {
		m, err := DecodeModule(header)
		require.NoError(t, err)
		require.Equal(t, wasm.Magic, m.MagicNumber)
		require.Equal(t, wasm.Version, m.Version)
		require.Empty(t, m.Sections)
	})
}

func TestDecodeModule_TypeSection(t *testing.T) {
	// (i32, i32) -> i32
	input := module(section(wasm.SectionIDType, []byte{
		0x01,             // one entry
		0x60,             // func form
		0x02, 0x7f, 0x7f, // two i32 params
		0x01, 0x7f, // one i32 result
	}))

	m, err := DecodeModule(input)
	require.NoError(t, err)
	require.Len(t, m.Sections, 1)

	types, ok := m.Sections[0].(*wasm.TypeSection)
	require.True(t, ok)
	require.Len(t, types.Entries, 1)

	ft := types.Entries[0]
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI32}, ft.Params)
	require.NotNil(t, ft.Result)
	require.Equal(t, wasm.ValueTypeI32, *ft.Result)
}

func TestDecodeModule_TypeSectionErrors(t *testing.T) {
	t.Run("bad form", func(t *testing.T) {
		_, err := DecodeModule(module(section(wasm.SectionIDType, []byte{0x01, 0x5f})))
		require.ErrorContains(t, err, "invalid function type form")
	})

	t.Run("bad value type", func(t *testing.T) {
		_, err := DecodeModule(module(section(wasm.SectionIDType, []byte{0x01, 0x60, 0x01, 0x79, 0x00})))
		var invalid *InvalidValueTypeError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, int8(-0x07), invalid.Raw)
	})
}

func TestDecodeModule_FunctionSection(t *testing.T) {
	m, err := DecodeModule(module(section(wasm.SectionIDFunction, []byte{0x02, 0x00, 0x01})))
	require.NoError(t, err)

	functions, ok := m.Sections[0].(*wasm.FunctionSection)
	require.True(t, ok)
	require.Equal(t, []uint32{0, 1}, functions.Types)
}

func TestDecodeModule_MemorySection(t *testing.T) {
	t.Run("bounded", func(t *testing.T) {
		m, err := DecodeModule(module(section(wasm.SectionIDMemory, []byte{0x01, 0x01, 0x01, 0x02})))
		require.NoError(t, err)

		memory, ok := m.Sections[0].(*wasm.MemorySection)
		require.True(t, ok)
		require.Len(t, memory.Entries, 1)
		limits := memory.Entries[0].Limits
		require.Equal(t, uint32(1), limits.Initial)
		require.NotNil(t, limits.Max)
		require.Equal(t, uint32(2), *limits.Max)
	})

	t.Run("unbounded", func(t *testing.T) {
		m, err := DecodeModule(module(section(wasm.SectionIDMemory, []byte{0x01, 0x00, 0x01})))
		require.NoError(t, err)

		memory := m.Sections[0].(*wasm.MemorySection)
		require.Nil(t, memory.Entries[0].Limits.Max)
	})
}

func TestDecodeModule_ExportSection(t *testing.T) {
	input := module(section(wasm.SectionIDExport, []byte{
		0x01,                     // one entry
		0x04, 'm', 'a', 'i', 'n', // name
		0x00, // kind: function
		0x00, // index
	}))

	m, err := DecodeModule(input)
	require.NoError(t, err)

	exports, ok := m.Sections[0].(*wasm.ExportSection)
	require.True(t, ok)
	require.Len(t, exports.Entries, 1)
	require.Equal(t, &wasm.ExportEntry{Name: "main", Kind: wasm.ExternalKindFunction, Index: 0}, exports.Entries[0])
}

func TestDecodeModule_ExportSectionErrors(t *testing.T) {
	t.Run("invalid utf8 name", func(t *testing.T) {
		_, err := DecodeModule(module(section(wasm.SectionIDExport, []byte{0x01, 0x02, 0xff, 0xfe, 0x00, 0x00})))
		require.ErrorContains(t, err, "utf8")
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := DecodeModule(module(section(wasm.SectionIDExport, []byte{0x01, 0x01, 'x', 0x07, 0x00})))
		var invalid *InvalidExternalKindError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, byte(0x07), invalid.Raw)
	})
}

func TestDecodeModule_StartAndCodeSections(t *testing.T) {
	input := module(
		section(wasm.SectionIDStart, []byte{0x00}),
		section(wasm.SectionIDCode, []byte{
			0x01,       // one body
			0x03,       // body size
			0x00,       // no locals
			0x0f, 0x0b, // return, end
		}),
	)

	m, err := DecodeModule(input)
	require.NoError(t, err)
	require.Len(t, m.Sections, 2)

	start, ok := m.Sections[0].(*wasm.StartSection)
	require.True(t, ok)
	require.Equal(t, uint32(0), start.Index)

	code, ok := m.Sections[1].(*wasm.CodeSection)
	require.True(t, ok)
	require.Len(t, code.Bodies, 1)
	require.Equal(t, []byte{wasm.OpcodeReturn}, code.Bodies[0].Code)
	require.Empty(t, code.Bodies[0].Locals)
}

func TestDecodeModule_CodeSectionLocals(t *testing.T) {
	input := module(section(wasm.SectionIDCode, []byte{
		0x01,       // one body
		0x06,       // body size
		0x02,       // two local entries
		0x02, 0x7f, // two i32 locals
		0x01, 0x7e, // one i64 local
		0x0b, // end
	}))

	m, err := DecodeModule(input)
	require.NoError(t, err)

	code := m.Sections[0].(*wasm.CodeSection)
	require.Equal(t, []*wasm.LocalEntry{
		{Count: 2, Type: wasm.ValueTypeI32},
		{Count: 1, Type: wasm.ValueTypeI64},
	}, code.Bodies[0].Locals)
	require.Empty(t, code.Bodies[0].Code)
}

func TestDecodeModule_CustomSection(t *testing.T) {
	m, err := DecodeModule(module(section(wasm.SectionIDCustom, []byte{
		0x04, 'n', 'a', 'm', 'e', // name
		0xde, 0xad, 0xbe, 0xef, // discarded payload
	})))
	require.NoError(t, err)

	custom, ok := m.Sections[0].(*wasm.CustomSection)
	require.True(t, ok)
	require.Equal(t, "name", custom.Name)
}

func TestDecodeModule_UnknownSections(t *testing.T) {
	// Import, table, global, element and data sections are consumed and
	// retained as unknown, keeping only the id.
	for _, id := range []wasm.SectionID{
		wasm.SectionIDImport,
		wasm.SectionIDTable,
		wasm.SectionIDGlobal,
		wasm.SectionIDElement,
		wasm.SectionIDData,
	} {
		m, err := DecodeModule(module(section(id, []byte{0x01, 0x02, 0x03})))
		require.NoError(t, err)
		require.Equal(t, &wasm.UnknownSection{ID: id}, m.Sections[0])
	}
}

func TestDecodeModule_SectionOrderRetained(t *testing.T) {
	input := module(
		section(wasm.SectionIDCustom, []byte{0x00}),
		section(wasm.SectionIDStart, []byte{0x00}),
		section(wasm.SectionIDData, []byte{}),
	)

	m, err := DecodeModule(input)
	require.NoError(t, err)
	require.Len(t, m.Sections, 3)
	require.IsType(t, &wasm.CustomSection{}, m.Sections[0])
	require.IsType(t, &wasm.StartSection{}, m.Sections[1])
	require.IsType(t, &wasm.UnknownSection{}, m.Sections[2])
}

func TestDecodeModule_Truncation(t *testing.T) {
	t.Run("payload length not consumed", func(t *testing.T) {
		// Start section claims 3 payload bytes but the index is 1 byte.
		input := append(append([]byte{}, header...), wasm.SectionIDStart, 0x03, 0x00, 0x00, 0x00)
		_, err := DecodeModule(input)
		require.ErrorContains(t, err, "invalid section length")
	})

	t.Run("stream ends mid-section", func(t *testing.T) {
		input := append(append([]byte{}, header...), wasm.SectionIDType, 0x05, 0x01)
		_, err := DecodeModule(input)
		require.Error(t, err)
	})

	t.Run("stream ends before payload length", func(t *testing.T) {
		input := append(append([]byte{}, header...), wasm.SectionIDType)
		_, err := DecodeModule(input)
		require.ErrorContains(t, err, "get size of section")
	})
}
