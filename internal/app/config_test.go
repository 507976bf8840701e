package app

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		args        []string
		wantConfig  Config
		wantVersion bool
		wantErr     bool
	}{
		{
			name: "defaults",
			wantConfig: Config{
				Port:     3000,
				Env:      "dev",
				BasePath: "/theater",
				DB: DBConfig{
					MaxOpenConns: 25,
					MaxIdleTime:  15 * time.Minute,
				},
			},
		},
		{
			name: "environment variables",
			env: map[string]string{
				"PORT":             "8080",
				"ENVIRONMENT":      "prod",
				"DB_DSN":           "postgres://movies@db/movies",
				"DB_MAX_IDLE_TIME": "1m",
				"DB_AUTO_MIGRATE":  "true",
			},
			wantConfig: Config{
				Port:     8080,
				Env:      "prod",
				BasePath: "/theater",
				DB: DBConfig{
					DSN:          "postgres://movies@db/movies",
					MaxOpenConns: 25,
					MaxIdleTime:  time.Minute,
					AutoMigrate:  true,
				},
			},
		},
		{
			name: "flags override environment",
			env:  map[string]string{"PORT": "8080", "BASE_PATH": "/api/v1/theater"},
			args: []string{"-port", "4000", "-base-path", "/cinema/", "-otel-collector-url", "otel:4317"},
			wantConfig: Config{
				Port:             4000,
				Env:              "dev",
				BasePath:         "/cinema",
				OtelCollectorUrl: "otel:4317",
				DB: DBConfig{
					MaxOpenConns: 25,
					MaxIdleTime:  15 * time.Minute,
				},
			},
		},
		{
			name:        "version flag",
			args:        []string{"-version"},
			wantVersion: true,
			wantConfig: Config{
				Port:     3000,
				Env:      "dev",
				BasePath: "/theater",
				DB: DBConfig{
					MaxOpenConns: 25,
					MaxIdleTime:  15 * time.Minute,
				},
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"-nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"PORT", "ENVIRONMENT", "BASE_PATH", "OTEL_COLLECTOR_URL",
				"DB_DSN", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_TIME", "DB_AUTO_MIGRATE"} {
				// t.Setenv restores the original value; Unsetenv makes the key absent
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, version, err := LoadConfig(tt.args)

			if tt.wantErr {
				if err == nil {
					t.Fatal("LoadConfig() expected an error")
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadConfig() unexpected error: %v", err)
			}

			if version != tt.wantVersion {
				t.Errorf("LoadConfig() version = %v, want %v", version, tt.wantVersion)
			}

			if diff := cmp.Diff(tt.wantConfig, cfg); diff != "" {
				t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
