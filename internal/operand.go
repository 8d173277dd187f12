package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Format is an operand display format.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_DECIMAL = Format(0) // decimal
	FORMAT_HEX     = Format(1) // hex
	FORMAT_BINARY  = Format(2) // binary
	FORMAT_ALL     = Format(3) // all
)

// ParseFormat looks up a display format by name.
func ParseFormat(name string) (format Format, err error) {
	for format = FORMAT_DECIMAL; format <= FORMAT_ALL; format++ {
		if format.String() == strings.ToLower(name) {
			return
		}
	}

	err = fmt.Errorf("%w: %v", ErrFormat, name)
	return
}

// Value formats an 8-bit value.
func (format Format) Value(value uint) string {
	value &= 0xff

	switch format {
	case FORMAT_HEX:
		return fmt.Sprintf("0x%02X", value)
	case FORMAT_BINARY:
		return fmt.Sprintf("0b%08b", value)
	case FORMAT_ALL:
		return fmt.Sprintf("%3d (0x%02X, 0b%08b)", value, value, value)
	default:
		return fmt.Sprintf("%3d", value)
	}
}

// ParseOperand parses an 8-bit operand. With base 0, a '0x' prefix selects
// hex, '0b' selects binary, and anything else is decimal. With base 16 or 2,
// the matching prefix is optional.
func ParseOperand(text string, base int) (value uint, err error) {
	digits := strings.TrimSpace(text)
	lower := strings.ToLower(digits)

	switch base {
	case 0:
		base = 10
		if strings.HasPrefix(lower, "0x") {
			base = 16
			digits = digits[2:]
		} else if strings.HasPrefix(lower, "0b") {
			base = 2
			digits = digits[2:]
		}
	case 16:
		if strings.HasPrefix(lower, "0x") {
			digits = digits[2:]
		}
	case 2:
		if strings.HasPrefix(lower, "0b") {
			digits = digits[2:]
		}
	}

	parsed, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		err = ErrOperand{Operand: text, Err: err}
		return
	}

	if parsed > 0xff {
		err = ErrOperand{Operand: text, Err: ErrOperandRange}
		return
	}

	value = uint(parsed)
	return
}
