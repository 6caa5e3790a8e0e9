package tftcmd

import "testing"

func TestParseDisplayDriver(t *testing.T) {
	tests := []struct {
		in      string
		want    DisplayDriver
		wantErr bool
	}{
		{"ST7735", ST7735, false},
		{"st7789", ST7789, false},
		{"Gc9a01", GC9A01, false},
		{"HX8357D", HX8357D, false},
		{"SSD1322", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDisplayDriver(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDisplayDriver(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDisplayDriver(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplayDrivers(t *testing.T) {
	all := DisplayDrivers()
	if len(all) != int(numDrivers) {
		t.Fatalf("len(DisplayDrivers()) = %d, want %d", len(all), numDrivers)
	}
	seen := map[string]bool{}
	for i, d := range all {
		if int(d) != i {
			t.Errorf("DisplayDrivers()[%d] = %v, out of order", i, d)
		}
		if !d.Valid() {
			t.Errorf("%v.Valid() = false", d)
		}
		if seen[d.String()] {
			t.Errorf("duplicate name %s", d)
		}
		seen[d.String()] = true
	}
	if DisplayDriver(200).Valid() {
		t.Error("DisplayDriver(200).Valid() = true")
	}
	if got := DisplayDriver(200).String(); got != "DisplayDriver(200)" {
		t.Errorf("String() = %q, want DisplayDriver(200)", got)
	}
}
