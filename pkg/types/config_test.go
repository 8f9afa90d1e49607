package types

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty DataDir returns ErrDataDirEmpty",
			config:  Config{DataDir: ""},
			wantErr: ErrDataDirEmpty,
		},
		{
			name:    "DBName with a directory returns ErrDBNameInvalid",
			config:  Config{DataDir: "/tmp/data", DBName: "nested/agent.db"},
			wantErr: ErrDBNameInvalid,
		},
		{
			name:    "DBName dot returns ErrDBNameInvalid",
			config:  Config{DataDir: "/tmp/data", DBName: "."},
			wantErr: ErrDBNameInvalid,
		},
		{
			name:    "DBName dot-dot returns ErrDBNameInvalid",
			config:  Config{DataDir: "/tmp/data", DBName: ".."},
			wantErr: ErrDBNameInvalid,
		},
		{
			name:    "negative busy timeout returns ErrBusyTimeoutInvalid",
			config:  Config{DataDir: "/tmp/data", BusyTimeoutMS: -1},
			wantErr: ErrBusyTimeoutInvalid,
		},
		{
			name:    "DataDir only is valid",
			config:  Config{DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "all fields set is valid",
			config:  Config{DataDir: "/tmp/data", DBName: "agent.db", EnforceForeignKeys: true, BusyTimeoutMS: 100},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigDBPath(t *testing.T) {
	c := Config{DataDir: "/tmp/data"}
	if got, want := c.DBPath(), filepath.Join("/tmp/data", DefaultDBName); got != want {
		t.Errorf("DBPath() = %q, want %q", got, want)
	}

	c.DBName = "other.db"
	if got, want := c.DBPath(), filepath.Join("/tmp/data", "other.db"); got != want {
		t.Errorf("DBPath() = %q, want %q", got, want)
	}
}

func TestConfigBusyTimeout(t *testing.T) {
	if got := (Config{}).BusyTimeout(); got != DefaultBusyTimeoutMS {
		t.Errorf("BusyTimeout() = %d, want default %d", got, DefaultBusyTimeoutMS)
	}
	if got := (Config{BusyTimeoutMS: 250}).BusyTimeout(); got != 250 {
		t.Errorf("BusyTimeout() = %d, want 250", got)
	}
}
