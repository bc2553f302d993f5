package mix

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseConvertArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantAmount float64
		wantLength float64
		wantErr    bool
	}{
		{
			"pmol and kbp",
			[]string{"0.5", "5.0"},
			0.5,
			5.0,
			false,
		},
		{
			"too few arguments",
			[]string{"0.5"},
			0,
			0,
			true,
		},
		{
			"amount not a number",
			[]string{"half", "5.0"},
			0,
			0,
			true,
		},
		{
			"negative length",
			[]string{"0.5", "-5.0"},
			0,
			0,
			true,
		},
		{
			"zero amount",
			[]string{"0", "5.0"},
			0,
			0,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, length, err := parseConvertArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseConvertArgs() err = %v, wantErr %t", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("parseConvertArgs() err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if amount != tt.wantAmount || length != tt.wantLength {
				t.Errorf("parseConvertArgs() = %f, %f, want %f, %f", amount, length, tt.wantAmount, tt.wantLength)
			}
		})
	}
}
