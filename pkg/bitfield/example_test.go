package bitfield_test

import (
	"fmt"

	"github.com/gregLibert/bitfield/pkg/bitfield"
)

// A fictional load instruction layout: a 6-bit opcode in the top bits, two
// 5-bit register numbers, and a signed 16-bit offset in the low bits.
var (
	opField  = bitfield.MustNew(26, 31)
	dstField = bitfield.MustNew(21, 25)
	srcField = bitfield.MustNew(16, 20)
	offField = bitfield.MustNew(0, 15)
)

func Example() {
	// Assemble: lw r9, -4(r29)
	var word uint32
	word = opField.Insert(0b100011, word)
	word = dstField.Insert(9, word)
	word = srcField.Insert(29, word)
	off := int32(-4)
	word = offField.Insert(uint32(off)&0xFFFF, word)

	// Disassemble.
	fmt.Printf("opcode %#b dst r%d src r%d offset %d\n",
		opField.Extract(word),
		dstField.Extract(word),
		srcField.Extract(word),
		offField.ExtractSigned(word),
	)
	// Output: opcode 0b100011 dst r9 src r29 offset -4
}

func ExampleBitField_Insert() {
	f := bitfield.MustNew(3, 5)
	fmt.Printf("%#b\n", f.Insert(0b101, 0b110))
	// Output: 0b101110
}

func ExampleBitField_Extract() {
	f := bitfield.MustNew(0, 3)
	fmt.Println(f.Extract(0b10110101))
	// Output: 5
}

func ExampleSignExtend() {
	fmt.Println(bitfield.SignExtend(0b111, 3))
	fmt.Println(bitfield.SignExtend(0b011, 3))
	// Output:
	// -1
	// 3
}
