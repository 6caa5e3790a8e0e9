package tftcmd

import (
	"fmt"
	"strings"
)

// DisplayDriver identifies a supported controller family.
type DisplayDriver uint8

const (
	ST7735 DisplayDriver = iota
	ST7789
	ST7796
	ILI9163
	ILI9341
	ILI9342
	ILI9481
	ILI9486
	ILI9488
	GC9A01
	GC9107
	HX8357D

	numDrivers
)

var driverNames = [...]string{
	ST7735:  "ST7735",
	ST7789:  "ST7789",
	ST7796:  "ST7796",
	ILI9163: "ILI9163",
	ILI9341: "ILI9341",
	ILI9342: "ILI9342",
	ILI9481: "ILI9481",
	ILI9486: "ILI9486",
	ILI9488: "ILI9488",
	GC9A01:  "GC9A01",
	GC9107:  "GC9107",
	HX8357D: "HX8357D",
}

func (d DisplayDriver) String() string {
	if d < numDrivers {
		return driverNames[d]
	}
	return fmt.Sprintf("DisplayDriver(%d)", uint8(d))
}

// Valid reports whether d is one of the supported families.
func (d DisplayDriver) Valid() bool {
	return d < numDrivers
}

// DisplayDrivers returns every supported family in declaration order.
func DisplayDrivers() []DisplayDriver {
	out := make([]DisplayDriver, 0, numDrivers)
	for d := DisplayDriver(0); d < numDrivers; d++ {
		out = append(out, d)
	}
	return out
}

// ParseDisplayDriver returns the family named s, ignoring case.
func ParseDisplayDriver(s string) (DisplayDriver, error) {
	for d := DisplayDriver(0); d < numDrivers; d++ {
		if strings.EqualFold(driverNames[d], s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("tftcmd: unknown display driver %q", s)
}

// MIPI-DCS command codes shared by every supported family.
const (
	NOP     = 0x00 // No operation
	SWRESET = 0x01 // Software reset
	SLPIN   = 0x10 // Sleep in
	SLPOUT  = 0x11 // Sleep out
	PTLON   = 0x12 // Partial mode on
	NORON   = 0x13 // Normal display mode on
	INVOFF  = 0x20 // Display inversion off
	INVON   = 0x21 // Display inversion on
	GAMSET  = 0x26 // Gamma curve select
	DISPOFF = 0x28 // Display off
	DISPON  = 0x29 // Display on
	CASET   = 0x2A // Column address set
	PASET   = 0x2B // Page (row) address set
	RAMWR   = 0x2C // Memory write
	RAMRD   = 0x2E // Memory read
	MADCTL  = 0x36 // Memory data access control
	IDMOFF  = 0x38 // Idle mode off
	IDMON   = 0x39 // Idle mode on
	COLMOD  = 0x3A // Interface pixel format
)

// Vendor command codes whose meaning or encoding differs between families.
const (
	st7735FRMCTR1 = 0xB1 // Frame rate control, normal mode
	st7735PWCTR1  = 0xC0 // Power control 1
	st7735VMCTR1  = 0xC5 // VCOM control 1

	st7789PORCTRL = 0xB2 // Porch setting
	st7789VCOMS   = 0xBB // VCOM setting
	st7789FRCTRL2 = 0xC6 // Frame rate control, normal mode
	st7789PWCTRL1 = 0xD0 // Power control 1

	ili9341PWCTR1 = 0xC0 // Power control 1
	ili9341VMCTR1 = 0xC5 // VCOM control 1
	ili9341PRCTR  = 0xF7 // Pump ratio control

	ili9488ADJCTL3 = 0xF7 // Adjust control 3

	gc9xxxFRAMERATE = 0xE8 // Frame rate
)
