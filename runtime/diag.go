package suppose

import (
	"encoding/hex"
	"strconv"
)

// DiagPool renders a pool in diagnostic form: a hex dump of the raw
// bytes, then the recorded spans indented by nesting level with the
// bytes each span covers. Handy when a minimized counterexample needs
// a closer look at how a generator consumed its input.
func DiagPool(p *Pool) string {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)

	data := p.Buffer()
	bb.WriteString(strconv.Itoa(len(data)))
	bb.WriteString(" bytes")
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		bb.WriteString("\n  ")
		diagHex(bb, data[off:end])
	}

	if spans := p.Spans(); len(spans) > 0 {
		bb.WriteString("\nspans (recorded order):")
		for _, sp := range spans {
			bb.WriteString("\n  ")
			for i := 0; i < sp.Level; i++ {
				bb.WriteString("  ")
			}
			bb.WriteString("[")
			bb.WriteString(strconv.Itoa(sp.Start))
			bb.WriteString(", ")
			bb.WriteString(strconv.Itoa(sp.End))
			bb.WriteString(")")
			if sp.Start <= sp.End && sp.End <= len(data) {
				bb.WriteString(" ")
				diagHex(bb, data[sp.Start:sp.End])
			}
		}
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return string(out)
}

func diagHex(bb *ByteBuffer, b []byte) {
	for i := range b {
		if i > 0 {
			bb.AppendByte(' ')
		}
		hex.Encode(bb.Extend(2), b[i:i+1])
	}
}
