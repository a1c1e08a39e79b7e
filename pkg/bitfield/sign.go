package bitfield

import "fmt"

// SignExtend reinterprets field as a two's-complement signed integer of the
// given bit width, widened to the native int.
//
// The low width-1 bits are kept as magnitude; if the sign bit (bit width-1)
// is set, 2^(width-1) is subtracted, so ordinary arithmetic on the result
// behaves exactly as it would on a width-bit register:
//
//	0b011 ->  3
//	0b000 ->  0
//	0b111 -> -1
//	0b100 -> -4
//
// width must be at least 2 and field must satisfy field < 2^(width+1); both
// are contract violations reported by panic, never clamped. The field bound
// is one bit looser than the field width, and callers may rely on that slack.
func SignExtend(field uint32, width uint) int {
	if width <= 1 {
		panic(fmt.Sprintf("bitfield: sign extension needs a width of at least 2, got %d", width))
	}
	if uint64(field) >= uint64(1)<<(width+1) {
		panic(fmt.Sprintf("bitfield: field %#x does not fit in %d bits", field, width))
	}

	signBit := uint64(1) << (width - 1)
	if uint64(field)&signBit == 0 {
		return int(field)
	}
	return int(int64(uint64(field)&(signBit-1)) - int64(signBit))
}
