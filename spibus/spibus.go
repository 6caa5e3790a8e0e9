// Package spibus drives a TFT controller over a periph.io SPI port with a
// separate Data/Command GPIO line.
//
// Dev implements tftcmd.Transport, so any tftcmd.Sequence can be executed on
// real hardware:
//
//	dev, err := spibus.NewSPI(port, dcPin, &spibus.Opts{RST: rstPin})
//	if err != nil {
//		return err
//	}
//	defer dev.Halt()
//	err = tftcmd.NewExecutor(dev).ExecuteSequence(seq)
package spibus

import (
	"errors"
	"fmt"
	"time"

	"github.com/flavioheleno/tftcmd"
	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// ErrHalted is returned by every write after Halt.
var ErrHalted = errors.New("spibus: halted")

// Reset pulse timing.
const (
	resetLow  = 20 * time.Millisecond
	resetWait = 150 * time.Millisecond
)

// Opts is the configuration for the SPI transport.
type Opts struct {
	Hz   physic.Frequency // Bus speed (default: 16MHz)
	Mode spi.Mode         // SPI mode (default: Mode0)

	// Optional hardware reset pin
	RST gpio.PinIO

	// Clock used for delays and the reset pulse (default: real clock)
	Clock clockwork.Clock
}

// Dev is a tftcmd.Transport over SPI.
type Dev struct {
	c     conn.Conn   // SPI connection
	dc    gpio.PinOut // Data/Command pin
	rst   gpio.PinIO  // Reset pin (optional)
	clock clockwork.Clock

	hz     physic.Frequency
	halted bool
}

// NewSPI connects to p and, when opts.RST is set, pulses the reset line.
//
// The port is configured for 8-bit transfers. The dc GPIO pin must be
// provided; it is driven low for commands and high for data.
//
// opts can be nil to use defaults.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("spibus: dc pin is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	hz := opts.Hz
	if hz == 0 {
		hz = 16 * physic.MegaHertz
	}
	if hz < 0 || hz > 100*physic.MegaHertz {
		return nil, fmt.Errorf("spibus: invalid bus speed %s", hz)
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	c, err := p.Connect(hz, opts.Mode, 8)
	if err != nil {
		return nil, fmt.Errorf("spibus: failed to connect: %w", err)
	}

	d := &Dev{
		c:     c,
		dc:    dc,
		rst:   opts.RST,
		clock: clock,
		hz:    hz,
	}
	if err := d.Reset(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reset pulses the RST line low then high and clears the halted state.
// Without a reset pin the controller relies on its power-on reset or SWRESET.
func (d *Dev) Reset() error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("spibus: failed to pull RST low: %w", err)
		}
		d.clock.Sleep(resetLow)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("spibus: failed to pull RST high: %w", err)
		}
		d.clock.Sleep(resetWait)
	}
	d.halted = false
	return nil
}

// WriteCommand implements tftcmd.Transport.
func (d *Dev) WriteCommand(b byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.send(gpio.Low, b)
}

// WriteData implements tftcmd.Transport.
func (d *Dev) WriteData(b byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.send(gpio.High, b)
}

// Delay implements tftcmd.Transport.
func (d *Dev) Delay(ms uint16) error {
	if d.halted {
		return ErrHalted
	}
	d.clock.Sleep(time.Duration(ms) * time.Millisecond)
	return nil
}

func (d *Dev) send(l gpio.Level, b byte) error {
	if err := d.dc.Out(l); err != nil {
		return fmt.Errorf("spibus: failed to drive DC: %w", err)
	}
	if err := d.c.Tx([]byte{b}, nil); err != nil {
		return fmt.Errorf("spibus: tx 0x%02X: %w", b, err)
	}
	return nil
}

// Halt turns the display off. Further writes fail with ErrHalted until Reset
// is called.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.send(gpio.Low, tftcmd.DISPOFF)
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("spibus.Dev{%s, %s}", d.c, d.hz)
}

var _ tftcmd.Transport = (*Dev)(nil)
