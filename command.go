package tftcmd

import (
	"fmt"
	"time"
)

// Limits enforced by validation.
const (
	MaxListLength     = 256  // Bytes in a COMMAND_LIST or DATA_LIST
	MaxDelayMs        = 1000 // Longest DELAY in milliseconds
	MaxSequenceLength = 1024 // Elements in a Sequence
)

// Type tags the bus operation carried by a Command.
type Type uint8

const (
	TypeCommand     Type = iota // One command byte (D/C low)
	TypeData                    // One data byte (D/C high)
	TypeCommandList             // Several command bytes
	TypeDataList                // Several data bytes
	TypeDelay                   // Wait on the bus
	TypeEnd                     // End of sequence marker
)

var typeNames = [...]string{
	TypeCommand:     "COMMAND",
	TypeData:        "DATA",
	TypeCommandList: "COMMAND_LIST",
	TypeDataList:    "DATA_LIST",
	TypeDelay:       "DELAY",
	TypeEnd:         "END",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// isData reports whether t only carries data bytes.
func (t Type) isData() bool {
	return t == TypeData || t == TypeDataList
}

// Command is one bus operation. It is immutable once built; use the Make
// constructors.
type Command struct {
	typ   Type
	data  []byte
	delay uint16
	desc  string
}

// MakeCommand returns a single command byte.
func MakeCommand(b byte) Command {
	return Command{typ: TypeCommand, data: []byte{b}}
}

// MakeData returns a single data byte.
func MakeData(b byte) Command {
	return Command{typ: TypeData, data: []byte{b}}
}

// MakeCommandList returns a run of command bytes. The slice is copied.
func MakeCommandList(b []byte) Command {
	return Command{typ: TypeCommandList, data: clone(b)}
}

// MakeDataList returns a run of data bytes. The slice is copied.
func MakeDataList(b []byte) Command {
	return Command{typ: TypeDataList, data: clone(b)}
}

// MakeDelay returns a wait of ms milliseconds.
func MakeDelay(ms uint16) Command {
	return Command{typ: TypeDelay, delay: ms}
}

// MakeEnd returns the end of sequence marker.
func MakeEnd() Command {
	return Command{typ: TypeEnd}
}

// WithDescription returns a copy of c annotated with a diagnostic label.
func (c Command) WithDescription(desc string) Command {
	c.desc = desc
	return c
}

// Type returns the operation tag.
func (c Command) Type() Type {
	return c.typ
}

// Data returns a copy of the payload bytes.
func (c Command) Data() []byte {
	return clone(c.data)
}

// Len returns the payload length.
func (c Command) Len() int {
	return len(c.data)
}

// DelayMs returns the delay in milliseconds; only meaningful for TypeDelay.
func (c Command) DelayMs() uint16 {
	return c.delay
}

// Duration returns the delay as a time.Duration.
func (c Command) Duration() time.Duration {
	return time.Duration(c.delay) * time.Millisecond
}

// Description returns the diagnostic label, if any.
func (c Command) Description() string {
	return c.desc
}

// Validate checks the structural rules for c's type. The first failing rule
// wins. ErrorIndex is always 0; Sequence.Validate fills in the position.
func (c Command) Validate() ValidationResult {
	switch c.typ {
	case TypeCommand, TypeData:
		if len(c.data) != 1 {
			return invalid(ErrInvalidDataSize, 0, fmt.Sprintf("%s must carry exactly 1 byte, got %d", c.typ, len(c.data)))
		}
	case TypeCommandList, TypeDataList:
		if len(c.data) == 0 {
			return invalid(ErrEmptyDataList, 0, fmt.Sprintf("%s is empty", c.typ))
		}
		if len(c.data) > MaxListLength {
			return invalid(ErrSequenceTooLong, 0, fmt.Sprintf("%s has %d bytes, limit is %d", c.typ, len(c.data), MaxListLength))
		}
	case TypeDelay:
		if c.delay == 0 {
			return invalid(ErrZeroDelay, 0, "delay must not be zero")
		}
		if c.delay > MaxDelayMs {
			return invalid(ErrInvalidDataValue, 0, fmt.Sprintf("delay of %d ms exceeds %d ms", c.delay, MaxDelayMs))
		}
	case TypeEnd:
	default:
		return invalid(ErrInvalidCommandType, 0, fmt.Sprintf("unknown command type %d", uint8(c.typ)))
	}
	return valid()
}

func (c Command) String() string {
	var s string
	switch c.typ {
	case TypeCommand, TypeData:
		if len(c.data) == 1 {
			s = fmt.Sprintf("%s(0x%02X)", c.typ, c.data[0])
		} else {
			s = fmt.Sprintf("%s(% X)", c.typ, c.data)
		}
	case TypeCommandList, TypeDataList:
		s = fmt.Sprintf("%s[% X]", c.typ, c.data)
	case TypeDelay:
		s = fmt.Sprintf("DELAY(%dms)", c.delay)
	default:
		s = c.typ.String()
	}
	if c.desc != "" {
		s += " // " + c.desc
	}
	return s
}

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
