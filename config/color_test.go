package config

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ffeded", color.RGBA{R: 0xff, G: 0xed, B: 0xed, A: 0xff}},
		{"1e1a20", color.RGBA{R: 0x1e, G: 0x1a, B: 0x20, A: 0xff}},
		{"#f0a", color.RGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}},
		{" #FFFFFF ", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Fatalf("ParseHexColor(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexColorRejects(t *testing.T) {
	for _, in := range []string{"", "#ff", "#gggggg", "#ffeded00"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Fatalf("ParseHexColor(%q) error = nil, want error", in)
		}
	}
}

func TestFormatHexColorRoundTrip(t *testing.T) {
	c := color.RGBA{R: 0x12, G: 0xab, B: 0x0f, A: 0x80}
	got := FormatHexColor(c)
	if got != "#12ab0f" {
		t.Fatalf("FormatHexColor() = %q, want %q", got, "#12ab0f")
	}
}
