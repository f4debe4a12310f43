package app

import "testing"

// TestParseCommand はコマンドライン引数からサブコマンドが解析されることを検証する。
func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Command
	}{
		{"empty_defaults_to_serve", []string{}, CommandServe},
		{"nil_defaults_to_serve", nil, CommandServe},
		{"serve", []string{"serve"}, CommandServe},
		{"healthcheck", []string{"healthcheck"}, CommandHealthcheck},
		{"unknown_defaults_to_serve", []string{"bogus"}, CommandServe},
		{"extra_args_ignored", []string{"healthcheck", "extra"}, CommandHealthcheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCommand(tt.args); got != tt.want {
				t.Errorf("ParseCommand(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
