package tftcmd

// translationTable maps a source command byte and a target family to the
// byte that family expects.
type translationTable map[byte]map[DisplayDriver]byte

// commonCommands have the same encoding on every supported family.
var commonCommands = []byte{
	NOP, SWRESET, SLPIN, SLPOUT, INVOFF, INVON, DISPOFF, DISPON,
	CASET, PASET, RAMWR, RAMRD, COLMOD, MADCTL,
}

// override is a per-pair remapping of a vendor command.
type override struct {
	from, to DisplayDriver
	src, dst byte
}

// overrides are applied in order; a later entry replaces an earlier one for
// the same (byte, driver) key, including keys written as implicit reverses.
var overrides = []override{
	{ST7789, ST7735, st7789FRCTRL2, st7735FRMCTR1},
	{ST7735, ST7789, st7735FRMCTR1, st7789PORCTRL},
	{ST7735, ST7789, st7735VMCTR1, st7789VCOMS},
	{ILI9341, ST7789, ili9341VMCTR1, st7789VCOMS},
	{ST7735, ST7789, st7735PWCTR1, st7789PWCTRL1},
	{ILI9341, ST7789, ili9341PWCTR1, st7789PWCTRL1},
	{ST7789, GC9A01, st7789FRCTRL2, gc9xxxFRAMERATE},
	{ST7789, GC9107, st7789FRCTRL2, gc9xxxFRAMERATE},
	{ILI9341, ILI9488, ili9341PRCTR, ili9488ADJCTL3},
}

func newTranslationTable() translationTable {
	t := translationTable{}
	drivers := DisplayDrivers()
	for _, b := range commonCommands {
		for _, from := range drivers {
			for _, to := range drivers {
				if from != to {
					t.set(b, to, b)
				}
			}
		}
	}
	for _, o := range overrides {
		t.add(o.from, o.to, o.src, o.dst)
	}
	return t
}

// add registers src on from as dst on to. When the bytes differ, dst on to is
// also registered as src on from.
func (t translationTable) add(from, to DisplayDriver, src, dst byte) {
	t.set(src, to, dst)
	if src != dst {
		t.set(dst, from, src)
	}
}

func (t translationTable) set(src byte, to DisplayDriver, dst byte) {
	m, ok := t[src]
	if !ok {
		m = map[DisplayDriver]byte{}
		t[src] = m
	}
	m[to] = dst
}

func (t translationTable) lookup(src byte, to DisplayDriver) (byte, bool) {
	dst, ok := t[src][to]
	return dst, ok
}
