package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/sweeper/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "Valid level: debug", level: "debug", format: "json", wantErr: false},
		{name: "Valid level: DEBUG (case insensitive)", level: "DEBUG", format: "json", wantErr: false},
		{name: "Valid level: info", level: "info", format: "json", wantErr: false},
		{name: "Valid level: warn", level: "warn", format: "json", wantErr: false},
		{name: "Valid level: error", level: "error", format: "json", wantErr: false},
		{name: "Invalid level", level: "verbose", format: "json", wantErr: true},
		{name: "Console format", level: "info", format: "console", wantErr: false},
		{name: "Text format", level: "info", format: "text", wantErr: false},
		{name: "Invalid format", level: "info", format: "logfmt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Logger{Level: tt.level, Format: tt.format}

			logger, err := cfg.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, logger).NotNil()
		})
	}
}
