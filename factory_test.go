package tftcmd

import "testing"

// basicFactory only implements the mandatory intents.
type basicFactory struct{}

func single(name string, b byte) *Sequence {
	s := NewSequence(name)
	s.AddCommand(b)
	s.AddEnd()
	return s
}

func (basicFactory) InitSequence() *Sequence       { return single("init", SWRESET) }
func (basicFactory) SleepSequence() *Sequence      { return single("sleep", SLPIN) }
func (basicFactory) WakeSequence() *Sequence       { return single("wake", SLPOUT) }
func (basicFactory) DisplayOnSequence() *Sequence  { return single("on", DISPON) }
func (basicFactory) DisplayOffSequence() *Sequence { return single("off", DISPOFF) }
func (basicFactory) InvertOnSequence() *Sequence   { return single("inv_on", INVON) }
func (basicFactory) InvertOffSequence() *Sequence  { return single("inv_off", INVOFF) }

// modeFactory adds the optional intents.
type modeFactory struct{ basicFactory }

func (modeFactory) PartialModeSequence() *Sequence { return single("partial", PTLON) }
func (modeFactory) NormalModeSequence() *Sequence  { return single("normal", NORON) }
func (modeFactory) IdleModeSequence() *Sequence    { return single("idle", IDMON) }
func (modeFactory) ResetGammaSequence() *Sequence  { return single("gamma", GAMSET) }

func TestOptionalSequences(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(SequenceFactory) *Sequence
		wantLen int
	}{
		{"partial", PartialModeSequence, 2},
		{"normal", NormalModeSequence, 2},
		{"idle", IdleModeSequence, 2},
		{"gamma", ResetGammaSequence, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(basicFactory{}); got.Len() != 0 {
				t.Errorf("unsupported %s sequence has %d elements, want 0", tt.name, got.Len())
			}
			got := tt.fn(modeFactory{})
			if got.Len() != tt.wantLen || got.Name() != tt.name {
				t.Errorf("%s sequence = %v", tt.name, got)
			}
		})
	}
}
