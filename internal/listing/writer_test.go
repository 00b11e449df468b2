package listing

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
)

const header = "; CHIP-8 program listing\n.org $200\n\n"

//nolint:funlen // test functions can be long
func TestWrite(t *testing.T) {
	tests := []struct {
		name     string
		program  []byte
		options  Options
		expected string
	}{
		{
			name: "labels and data",
			program: []byte{
				0x00, 0xE0,
				0x22, 0x06,
				0x12, 0x04,
				0x00, 0xEE,
				0xFF, 0xFF,
				0xF0, 0x90,
				0x00, 0x00,
			},
			expected: header +
				"    cls\n" +
				"    call _func_0206\n" +
				"_label_0204:\n" +
				"    jp _label_0204\n" +
				"\n" +
				"_func_0206:\n" +
				"    ret\n" +
				"\n" +
				"    .byte $FF, $FF, $F0, $90\n",
		},
		{
			name:    "skip target",
			program: []byte{0x30, 0x05, 0x60, 0x01, 0x12, 0x04},
			expected: header +
				"    se V0, $05\n" +
				"    ld V0, $01\n" +
				"_label_0204:\n" +
				"    jp _label_0204\n",
		},
		{
			name:    "jump relative to V0 has no label",
			program: []byte{0xB2, 0x02, 0x00, 0xE0},
			expected: header +
				"    jp V0, $202\n" +
				"\n" +
				"    cls\n",
		},
		{
			name:     "last instruction with zero low byte",
			program:  []byte{0x60, 0x05, 0x12, 0x00, 0x00, 0x00},
			expected: header + "_label_0200:\n    ld V0, $05\n    jp _label_0200\n",
		},
		{
			name:     "jump outside of program",
			program:  []byte{0x13, 0x00},
			expected: header + "    jp $300\n",
		},
		{
			name:     "odd program size",
			program:  []byte{0x00, 0xE0, 0xAB},
			expected: header + "    cls\n    .byte $AB\n",
		},
		{
			name:     "trailing zero bytes",
			program:  []byte{0x00, 0xE0, 0x00, 0x00},
			options:  Options{ZeroBytes: true},
			expected: header + "    cls\n    sys $000\n",
		},
		{
			name:     "offset comments",
			program:  []byte{0x60, 0x05, 0xFF, 0xFF},
			options:  Options{OffsetComments: true},
			expected: header + fmt.Sprintf("%-32s ; %s\n", "    ld V0, $05", "$0200 60 05") + fmt.Sprintf("%-32s ; %s\n", "    .byte $FF, $FF", "$0202"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := New(&buf, tt.options)

			assert.NoError(t, w.Write(0x200, tt.program))
			if diff := cmp.Diff(tt.expected, buf.String()); diff != "" {
				t.Errorf("listing mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEndIndex(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		options Options
		want    int
	}{
		{name: "zero low byte keeps the word", program: []byte{0x13, 0x00, 0x00, 0x00}, want: 2},
		{name: "odd image", program: []byte{0x00, 0xE0, 0xAB}, want: 3},
		{name: "only zero bytes", program: []byte{0x00, 0x00}, want: 0},
		{name: "zero bytes kept", program: []byte{0x00, 0xE0, 0x00, 0x00}, options: Options{ZeroBytes: true}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(&bytes.Buffer{}, tt.options)
			assert.Equal(t, tt.want, w.endIndex(tt.program))
		})
	}
}

func TestDecodeBundlesData(t *testing.T) {
	program := bytes.Repeat([]byte{0xFF}, 20)
	lines := decode(0x200, program)

	assert.Len(t, lines, 3)
	assert.Equal(t, uint16(0x200), lines[0].address)
	assert.Len(t, lines[0].data, dataBytesPerLine)
	assert.Equal(t, uint16(0x208), lines[1].address)
	assert.Equal(t, uint16(0x210), lines[2].address)
	assert.Len(t, lines[2].data, 4)
}
