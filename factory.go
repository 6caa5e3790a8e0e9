package tftcmd

// SequenceFactory builds the sequences for the logical operations every
// controller supports.
type SequenceFactory interface {
	InitSequence() *Sequence
	SleepSequence() *Sequence
	WakeSequence() *Sequence
	DisplayOnSequence() *Sequence
	DisplayOffSequence() *Sequence
	InvertOnSequence() *Sequence
	InvertOffSequence() *Sequence
}

// ModeSequenceFactory is implemented by factories for controllers with
// partial, idle and gamma support.
type ModeSequenceFactory interface {
	PartialModeSequence() *Sequence
	NormalModeSequence() *Sequence
	IdleModeSequence() *Sequence
	ResetGammaSequence() *Sequence
}

// PartialModeSequence returns f's partial mode sequence, or an empty sequence
// if f does not support it.
func PartialModeSequence(f SequenceFactory) *Sequence {
	if m, ok := f.(ModeSequenceFactory); ok {
		return m.PartialModeSequence()
	}
	return NewSequence("partial_mode")
}

// NormalModeSequence returns f's normal mode sequence, or an empty sequence
// if f does not support it.
func NormalModeSequence(f SequenceFactory) *Sequence {
	if m, ok := f.(ModeSequenceFactory); ok {
		return m.NormalModeSequence()
	}
	return NewSequence("normal_mode")
}

// IdleModeSequence returns f's idle mode sequence, or an empty sequence if f
// does not support it.
func IdleModeSequence(f SequenceFactory) *Sequence {
	if m, ok := f.(ModeSequenceFactory); ok {
		return m.IdleModeSequence()
	}
	return NewSequence("idle_mode")
}

// ResetGammaSequence returns f's gamma reset sequence, or an empty sequence
// if f does not support it.
func ResetGammaSequence(f SequenceFactory) *Sequence {
	if m, ok := f.(ModeSequenceFactory); ok {
		return m.ResetGammaSequence()
	}
	return NewSequence("reset_gamma")
}
