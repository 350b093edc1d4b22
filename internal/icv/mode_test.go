package icv

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeNormal},
		{in: "Normal", want: ModeNormal},
		{in: "astigmatism", want: ModeAstigmatism},
		{in: "miopia", want: ModeMyopia},
		{in: "myopia", want: ModeMyopia},
		{in: " accessible ", want: ModeAccessible},
		{in: "daltonism", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeMultipliers(t *testing.T) {
	want := map[Mode]float64{
		ModeNormal:      1.0,
		ModeAstigmatism: 1.2,
		ModeMyopia:      1.3,
		ModeAccessible:  0.8,
	}
	for _, m := range Modes() {
		if got := m.Multiplier(); got != want[m] {
			t.Errorf("%s.Multiplier() = %v, want %v", m, got, want[m])
		}
		if m.Corrects() != (m == ModeAccessible) {
			t.Errorf("%s.Corrects() = %v", m, m.Corrects())
		}
	}
	if got := SettingsFor(ModeMyopia); got.Multiplier != 1.3 {
		t.Errorf("SettingsFor(myopia) = %+v", got)
	}
}

func TestModeFlag(t *testing.T) {
	var mode Mode
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.VarP(&mode, "mode", "m", "viewing mode")

	if err := fs.Parse([]string{"--mode", "myopia"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mode != ModeMyopia {
		t.Errorf("mode = %q, want myopia", mode)
	}

	if err := fs.Parse([]string{"-m", "bogus"}); err == nil {
		t.Error("expected error for unknown mode")
	}
	if got := fs.Lookup("mode").Value.Type(); got != "mode" {
		t.Errorf("Type() = %q", got)
	}
}
