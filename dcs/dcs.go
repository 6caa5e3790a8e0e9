// Package dcs builds tftcmd sequences from the MIPI Display Command Set.
//
// Every controller family known to tftcmd implements the DCS core commands
// with the same encoding, so a single Factory serves all of them. Vendor
// specific tuning (power, gamma tables, porch settings) is not emitted;
// translate or extend the resulting sequences for that.
package dcs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flavioheleno/tftcmd"
)

// Pixel formats accepted by COLMOD.
const (
	RGB565 byte = 0x55 // 16 bits per pixel
	RGB666 byte = 0x66 // 18 bits per pixel
)

// MADCTL bits.
const (
	MADCTLMY  byte = 0x80 // Row address order
	MADCTLMX  byte = 0x40 // Column address order
	MADCTLMV  byte = 0x20 // Row/column exchange
	MADCTLML  byte = 0x10 // Vertical refresh order
	MADCTLBGR byte = 0x08 // BGR color filter panel
)

// Timing after the commands that need it, in milliseconds.
const (
	resetDelay  = 150
	sleepDelay  = 120
	normalDelay = 10
)

// Opts is the configuration for a Factory.
type Opts struct {
	ColorMode byte // COLMOD value (default: RGB565)
	MADCTL    byte // Memory access control value (default: 0)
}

// Factory implements tftcmd.SequenceFactory and tftcmd.ModeSequenceFactory.
type Factory struct {
	driver tftcmd.DisplayDriver
	opts   Opts
}

// New returns a Factory for driver.
//
// opts can be nil to use defaults.
func New(driver tftcmd.DisplayDriver, opts *Opts) (*Factory, error) {
	if !driver.Valid() {
		return nil, fmt.Errorf("dcs: unsupported driver %s", driver)
	}
	if opts == nil {
		opts = &Opts{}
	}
	o := *opts
	switch o.ColorMode {
	case 0:
		o.ColorMode = RGB565
	case RGB565, RGB666:
	default:
		return nil, errors.New("dcs: color mode must be RGB565 or RGB666")
	}
	return &Factory{driver: driver, opts: o}, nil
}

// Driver returns the controller family the sequences are named after.
func (f *Factory) Driver() tftcmd.DisplayDriver {
	return f.driver
}

func (f *Factory) name(intent string) string {
	return strings.ToLower(f.driver.String()) + "_" + intent
}

// build returns a sequence made of steps followed by END. Each step is added
// through the validating path; a factory bug surfaces as a panic instead of a
// silently shorter sequence.
func (f *Factory) build(intent string, steps ...tftcmd.Command) *tftcmd.Sequence {
	seq := tftcmd.NewSequence(f.name(intent))
	for _, c := range append(steps, tftcmd.MakeEnd()) {
		if !seq.Add(c) {
			panic(fmt.Sprintf("dcs: %s: %s", seq.Name(), seq.LastError()))
		}
	}
	tftcmd.Logger().Debug("dcs sequence built", "sequence", seq.Name(), "elements", seq.Len())
	return seq
}

func cmd(b byte, desc string) tftcmd.Command {
	return tftcmd.MakeCommand(b).WithDescription(desc)
}

// InitSequence resets the controller, leaves sleep, selects the pixel format
// and orientation, and turns the display on.
func (f *Factory) InitSequence() *tftcmd.Sequence {
	return f.build("init",
		cmd(tftcmd.SWRESET, "software reset"),
		tftcmd.MakeDelay(resetDelay),
		cmd(tftcmd.SLPOUT, "sleep out"),
		tftcmd.MakeDelay(sleepDelay),
		cmd(tftcmd.COLMOD, "pixel format"),
		tftcmd.MakeData(f.opts.ColorMode),
		cmd(tftcmd.MADCTL, "memory access control"),
		tftcmd.MakeData(f.opts.MADCTL),
		cmd(tftcmd.NORON, "normal mode"),
		tftcmd.MakeDelay(normalDelay),
		cmd(tftcmd.DISPON, "display on"),
		tftcmd.MakeDelay(sleepDelay),
	)
}

// SleepSequence turns the display off and enters sleep.
func (f *Factory) SleepSequence() *tftcmd.Sequence {
	return f.build("sleep",
		cmd(tftcmd.DISPOFF, "display off"),
		cmd(tftcmd.SLPIN, "sleep in"),
		tftcmd.MakeDelay(sleepDelay),
	)
}

// WakeSequence leaves sleep and turns the display on.
func (f *Factory) WakeSequence() *tftcmd.Sequence {
	return f.build("wake",
		cmd(tftcmd.SLPOUT, "sleep out"),
		tftcmd.MakeDelay(sleepDelay),
		cmd(tftcmd.DISPON, "display on"),
	)
}

// DisplayOnSequence turns the panel output on.
func (f *Factory) DisplayOnSequence() *tftcmd.Sequence {
	return f.build("display_on", cmd(tftcmd.DISPON, "display on"))
}

// DisplayOffSequence turns the panel output off.
func (f *Factory) DisplayOffSequence() *tftcmd.Sequence {
	return f.build("display_off", cmd(tftcmd.DISPOFF, "display off"))
}

// InvertOnSequence enables color inversion.
func (f *Factory) InvertOnSequence() *tftcmd.Sequence {
	return f.build("invert_on", cmd(tftcmd.INVON, "inversion on"))
}

// InvertOffSequence disables color inversion.
func (f *Factory) InvertOffSequence() *tftcmd.Sequence {
	return f.build("invert_off", cmd(tftcmd.INVOFF, "inversion off"))
}

// PartialModeSequence enters partial display mode.
func (f *Factory) PartialModeSequence() *tftcmd.Sequence {
	return f.build("partial_mode", cmd(tftcmd.PTLON, "partial mode on"))
}

// NormalModeSequence leaves partial and idle modes.
func (f *Factory) NormalModeSequence() *tftcmd.Sequence {
	return f.build("normal_mode",
		cmd(tftcmd.IDMOFF, "idle mode off"),
		cmd(tftcmd.NORON, "normal mode"),
	)
}

// IdleModeSequence enters the reduced color idle mode.
func (f *Factory) IdleModeSequence() *tftcmd.Sequence {
	return f.build("idle_mode", cmd(tftcmd.IDMON, "idle mode on"))
}

// ResetGammaSequence selects the first predefined gamma curve.
func (f *Factory) ResetGammaSequence() *tftcmd.Sequence {
	return f.build("reset_gamma",
		cmd(tftcmd.GAMSET, "gamma set"),
		tftcmd.MakeData(0x01),
	)
}

var (
	_ tftcmd.SequenceFactory     = (*Factory)(nil)
	_ tftcmd.ModeSequenceFactory = (*Factory)(nil)
)
