package tftcmd

import (
	"fmt"
	"strings"
)

// Sequence is an ordered, named list of Commands. Elements are only ever
// appended, and only after they validate; a derived sequence is a new value.
type Sequence struct {
	name    string
	cmds    []Command
	lastErr ValidationResult
}

// NewSequence returns an empty sequence. The name identifies it in a
// Translator cache.
func NewSequence(name string) *Sequence {
	return &Sequence{name: name, lastErr: valid()}
}

// Name returns the sequence name.
func (s *Sequence) Name() string {
	return s.name
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	return len(s.cmds)
}

// Commands returns a copy of the elements in execution order.
func (s *Sequence) Commands() []Command {
	out := make([]Command, len(s.cmds))
	copy(out, s.cmds)
	return out
}

// At returns the element at index i.
func (s *Sequence) At(i int) Command {
	return s.cmds[i]
}

// clone returns a copy with the same name and elements. Commands are
// immutable, so copying the slice is enough.
func (s *Sequence) clone() *Sequence {
	out := NewSequence(s.name)
	out.cmds = make([]Command, len(s.cmds))
	copy(out.cmds, s.cmds)
	return out
}

// LastError returns the most recent rejection recorded by Add.
func (s *Sequence) LastError() ValidationResult {
	return s.lastErr
}

// Add validates cmd and appends it. A rejected element is not appended; the
// reason is recorded in LastError and the existing content is unchanged.
func (s *Sequence) Add(cmd Command) bool {
	if len(s.cmds) >= MaxSequenceLength {
		s.lastErr = invalid(ErrSequenceTooLong, len(s.cmds), fmt.Sprintf("sequence is full (%d elements)", MaxSequenceLength))
		return false
	}
	if r := cmd.Validate(); !r.IsValid {
		s.lastErr = r
		return false
	}
	s.cmds = append(s.cmds, cmd)
	return true
}

// AddCommand appends a single command byte.
func (s *Sequence) AddCommand(b byte) bool {
	return s.Add(MakeCommand(b))
}

// AddData appends a single data byte.
func (s *Sequence) AddData(b byte) bool {
	return s.Add(MakeData(b))
}

// AddCommandList appends a run of command bytes.
func (s *Sequence) AddCommandList(b ...byte) bool {
	return s.Add(MakeCommandList(b))
}

// AddDataList appends a run of data bytes.
func (s *Sequence) AddDataList(b ...byte) bool {
	return s.Add(MakeDataList(b))
}

// AddDelay appends a wait of ms milliseconds.
func (s *Sequence) AddDelay(ms uint16) bool {
	return s.Add(MakeDelay(ms))
}

// AddEnd appends the end marker.
func (s *Sequence) AddEnd() bool {
	return s.Add(MakeEnd())
}

// Validate checks that the sequence is executable: non-empty, terminated by
// END and made only of valid elements.
func (s *Sequence) Validate() ValidationResult {
	if len(s.cmds) == 0 {
		return invalid(ErrEmptySequence, 0, "sequence is empty")
	}
	last := len(s.cmds) - 1
	if s.cmds[last].Type() != TypeEnd {
		return invalid(ErrNoEndMarker, last, "sequence does not end with END")
	}
	for i, cmd := range s.cmds {
		if r := cmd.Validate(); !r.IsValid {
			r.ErrorIndex = i
			r.Message = fmt.Sprintf("Invalid command at index %d: %s", i, r.Message)
			return r
		}
	}
	return valid()
}

func (s *Sequence) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s{", s.name)
	for i, cmd := range s.cmds {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(cmd.String())
	}
	b.WriteString("}")
	return b.String()
}
