package graphic

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#000", color.RGBA{0, 0, 0, 255}},
		{"fff", color.RGBA{255, 255, 255, 255}},
		{"#f008", color.RGBA{255, 0, 0, 136}},
		{"#1a2B3c", color.RGBA{0x1a, 0x2b, 0x3c, 255}},
		{"#11223344", color.RGBA{0x11, 0x22, 0x33, 0x44}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#gg0000", "red"} {
		_, err := ParseHex(in)
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
		if got := Hex(in); got != Black {
			t.Errorf("Hex(%q) = %v, want Black", in, got)
		}
	}
}

func TestHexString(t *testing.T) {
	c := color.RGBA{0x12, 0xab, 0x00, 0xff}
	if got := HexString(c); got != "#12ab00ff" {
		t.Errorf("HexString = %q, want #12ab00ff", got)
	}
	if back := Hex(HexString(c)); back != c {
		t.Errorf("Hex(HexString(c)) = %v, want %v", back, c)
	}
}
