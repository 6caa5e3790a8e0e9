package tftcmd

import (
	"bytes"
	"errors"
	"testing"
)

func TestCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantErr CommandError
	}{
		{"command", MakeCommand(0x29), ErrNone},
		{"data", MakeData(0x55), ErrNone},
		{"command with two bytes", Command{typ: TypeCommand, data: []byte{1, 2}}, ErrInvalidDataSize},
		{"data without byte", Command{typ: TypeData}, ErrInvalidDataSize},
		{"command list", MakeCommandList([]byte{0x2A, 0x2B}), ErrNone},
		{"empty command list", MakeCommandList(nil), ErrEmptyDataList},
		{"data list", MakeDataList([]byte{0x00, 0x7F}), ErrNone},
		{"empty data list", MakeDataList([]byte{}), ErrEmptyDataList},
		{"data list at limit", MakeDataList(make([]byte, MaxListLength)), ErrNone},
		{"data list over limit", MakeDataList(make([]byte, MaxListLength+1)), ErrSequenceTooLong},
		{"command list over limit", MakeCommandList(make([]byte, 300)), ErrSequenceTooLong},
		{"delay", MakeDelay(120), ErrNone},
		{"delay at limit", MakeDelay(MaxDelayMs), ErrNone},
		{"zero delay", MakeDelay(0), ErrZeroDelay},
		{"delay over limit", MakeDelay(MaxDelayMs + 1), ErrInvalidDataValue},
		{"end", MakeEnd(), ErrNone},
		{"unknown type", Command{typ: Type(42)}, ErrInvalidCommandType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.cmd.Validate()
			if r.IsValid != (tt.wantErr == ErrNone) {
				t.Errorf("Validate().IsValid = %v, want %v", r.IsValid, tt.wantErr == ErrNone)
			}
			if r.Error != tt.wantErr {
				t.Errorf("Validate().Error = %v, want %v", r.Error, tt.wantErr)
			}
			if r.ErrorIndex != 0 {
				t.Errorf("Validate().ErrorIndex = %d, want 0", r.ErrorIndex)
			}
			if !r.IsValid && r.Message == "" {
				t.Error("Validate().Message is empty for a failure")
			}
		})
	}
}

func TestCommandValidateDeterministic(t *testing.T) {
	cmds := []Command{MakeDelay(0), MakeDataList(nil), MakeCommand(1), Command{typ: Type(9)}}
	for _, c := range cmds {
		first := c.Validate()
		for i := 0; i < 3; i++ {
			if got := c.Validate(); got != first {
				t.Errorf("Validate() of %v = %v, then %v", c, first, got)
			}
		}
	}
}

func TestScenarioZeroDelay(t *testing.T) {
	r := MakeDelay(0).Validate()
	if r.IsValid || r.Error != ErrZeroDelay {
		t.Errorf("MakeDelay(0).Validate() = %v, want ZERO_DELAY", r)
	}
}

func TestScenarioEmptyDataList(t *testing.T) {
	r := MakeDataList([]byte{}).Validate()
	if r.IsValid || r.Error != ErrEmptyDataList {
		t.Errorf("MakeDataList({}).Validate() = %v, want EMPTY_DATA_LIST", r)
	}
}

func TestCommandImmutable(t *testing.T) {
	src := []byte{0x01, 0x02}
	c := MakeDataList(src)
	src[0] = 0xFF
	if got := c.Data(); !bytes.Equal(got, []byte{0x01, 0x02}) {
		t.Errorf("Data() = % X after mutating input, want 01 02", got)
	}
	out := c.Data()
	out[1] = 0xFF
	if got := c.Data(); !bytes.Equal(got, []byte{0x01, 0x02}) {
		t.Errorf("Data() = % X after mutating output, want 01 02", got)
	}
}

func TestCommandAccessors(t *testing.T) {
	c := MakeDelay(150).WithDescription("after reset")
	if c.Type() != TypeDelay {
		t.Errorf("Type() = %v, want DELAY", c.Type())
	}
	if c.DelayMs() != 150 {
		t.Errorf("DelayMs() = %d, want 150", c.DelayMs())
	}
	if c.Duration().Milliseconds() != 150 {
		t.Errorf("Duration() = %v, want 150ms", c.Duration())
	}
	if c.Description() != "after reset" {
		t.Errorf("Description() = %q, want %q", c.Description(), "after reset")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{MakeCommand(0x29), "COMMAND(0x29)"},
		{MakeData(0x05), "DATA(0x05)"},
		{MakeDataList([]byte{0x11, 0x22}), "DATA_LIST[11 22]"},
		{MakeDelay(10), "DELAY(10ms)"},
		{MakeEnd(), "END"},
		{MakeCommand(0x11).WithDescription("sleep out"), "COMMAND(0x11) // sleep out"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationResultErr(t *testing.T) {
	if err := MakeEnd().Validate().Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
	err := MakeDelay(0).Validate().Err()
	if !errors.Is(err, ErrZeroDelay) {
		t.Errorf("errors.Is(%v, ErrZeroDelay) = false", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Result.Error != ErrZeroDelay {
		t.Errorf("errors.As(%v) did not yield a ZERO_DELAY *ValidationError", err)
	}
}

func TestCommandErrorString(t *testing.T) {
	if got := ErrNoEndMarker.String(); got != "NO_END_MARKER" {
		t.Errorf("String() = %q, want NO_END_MARKER", got)
	}
	if got := CommandError(200).String(); got != "CommandError(200)" {
		t.Errorf("String() = %q, want CommandError(200)", got)
	}
	if got := ErrZeroDelay.Error(); got != "tftcmd: ZERO_DELAY" {
		t.Errorf("Error() = %q, want %q", got, "tftcmd: ZERO_DELAY")
	}
}
