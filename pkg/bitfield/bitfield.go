// Package bitfield packs and unpacks contiguous bit ranges within a 32-bit
// unsigned word, as needed when assembling or disassembling binary
// instruction encodings.
//
// Bit numbering:
// Bit 0 is the low-order bit, with value 2^0.
// Bit 31 is the high-order bit, with value 2^31.
// A field covers the inclusive range [fromBit, toBit]. For example the
// low-order 4 bits of a word are the field fromBit=0, toBit=3.
//
// A BitField is a descriptor only: it holds no word. Words are passed to each
// operation by value, every operation is pure, and a BitField is therefore
// safe for unsynchronized concurrent use.
package bitfield

import (
	"fmt"
	"log/slog"
)

// WordSize is the fixed width, in bits, of the words this package operates on.
const WordSize = 32

// BitField describes one contiguous bit range within a 32-bit word and
// handles extraction and insertion of values in that range.
//
// The zero value is not a valid BitField; use New or MustNew.
type BitField struct {
	fromBit int
	toBit   int
	mask    uint32
	logger  *slog.Logger
}

// New creates a BitField covering bits fromBit..toBit inclusive.
//
// It requires 0 <= fromBit < 32 and fromBit <= toBit <= 32. The upper
// endpoint deliberately admits 32, one past the top bit index; callers that
// pass toBit == 32 get a mask truncated at bit 31. Ranges outside these
// bounds are rejected, never clamped.
func New(fromBit, toBit int, opts ...Option) (BitField, error) {
	if fromBit < 0 || fromBit >= WordSize {
		return BitField{}, fmt.Errorf("from bit %d out of range (0 to %d)", fromBit, WordSize-1)
	}
	if toBit < fromBit || toBit > WordSize {
		return BitField{}, fmt.Errorf("to bit %d out of range (%d to %d)", toBit, fromBit, WordSize)
	}

	f := BitField{
		fromBit: fromBit,
		toBit:   toBit,
		logger:  discard,
	}

	for _, opt := range opts {
		opt(&f)
	}

	// A run of (toBit - fromBit + 1) one-bits, low end at position fromBit.
	// Shift counts of 32 or more yield 0 in Go, so the full-word and
	// toBit == 32 cases wrap exactly as a 32-bit register would.
	width := uint(toBit - fromBit + 1)
	f.mask = (uint32(1)<<width - 1) << fromBit

	f.logger.Debug("mask derived",
		"from_bit", f.fromBit,
		"to_bit", f.toBit,
		"mask", fmt.Sprintf("%08X", f.mask),
	)

	return f, nil
}

// MustNew is like New but panics on an invalid range. It is intended for
// static field layouts declared at package level.
func MustNew(fromBit, toBit int, opts ...Option) BitField {
	f, err := New(fromBit, toBit, opts...)
	if err != nil {
		panic(fmt.Sprintf("bitfield: %v", err))
	}
	return f
}

// FromBit returns the index of the field's low-order bit.
func (f BitField) FromBit() int {
	return f.fromBit
}

// ToBit returns the index of the field's high-order bit.
func (f BitField) ToBit() int {
	return f.toBit
}

// Width returns the number of bits the field covers.
func (f BitField) Width() int {
	return f.toBit - f.fromBit + 1
}

// Mask returns a word with ones in exactly the field's positions.
func (f BitField) Mask() uint32 {
	return f.mask
}

// Extract returns the field's bits of word, right-aligned in the low-order
// bits of the result. Extracting bits 3..5 yields a value between 0 and 7.
func (f BitField) Extract(word uint32) uint32 {
	return (f.mask & word) >> f.fromBit
}

// ExtractSigned returns the field's bits of word reinterpreted as a
// two's-complement signed value of the field's width.
//
// The field must be at least 2 bits wide; see SignExtend.
func (f BitField) ExtractSigned(word uint32) int32 {
	field := f.Extract(word)

	f.logger.Debug("sign extending field",
		"field", fmt.Sprintf("%b", field),
		"width", f.Width(),
	)

	return int32(SignExtend(field, uint(f.Width())))
}

// Insert places value, which should be right-aligned and no wider than the
// field, into the field's bits of word, and returns the combined word.
//
// The target range of word should be zero before the call. Neither
// expectation is checked: an oversized value is truncated to the field by
// masking, and bits already set in the range are OR-merged. Callers relying
// on defined results must satisfy both upstream.
//
// Example: the field 3..5 inserting 0b101 into 0b110 gives 0b101110.
func (f BitField) Insert(value, word uint32) uint32 {
	return (value << f.fromBit & f.mask) | word
}

// String returns a readable description of the field layout.
func (f BitField) String() string {
	return fmt.Sprintf("bits %d..%d (mask %08X)", f.fromBit, f.toBit, f.mask)
}
