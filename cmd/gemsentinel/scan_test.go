package main

import (
	"testing"

	"github.com/spf13/cobra"

	"GemSentinel/internal/model"
	"GemSentinel/internal/screener"
)

func TestApplyScanFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    screener.Options
		wantErr bool
	}{
		{
			name: "no flags keeps config",
			args: nil,
			want: screener.DefaultOptions(),
		},
		{
			name: "sort dir limit",
			args: []string{"--sort", "totalVolume", "--dir", "asc", "--limit", "3"},
			want: screener.Options{Criteria: screener.DefaultCriteria(), Field: model.FieldTotalVolume, Direction: model.Asc, Limit: 3},
		},
		{
			name: "strict",
			args: []string{"--strict"},
			want: screener.Options{Criteria: screener.StrictCriteria(), Field: model.FieldPotentialScore, Direction: model.Desc, Limit: screener.DefaultLimit},
		},
		{name: "bad sort", args: []string{"--sort", "hype"}, wantErr: true},
		{name: "bad dir", args: []string{"--dir", "up"}, wantErr: true},
		{name: "zero limit", args: []string{"--limit", "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "scan"}
			addScanFlags(cmd)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}

			opts := screener.DefaultOptions()
			err := applyScanFlags(cmd, &opts)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts != tt.want {
				t.Errorf("got %+v, want %+v", opts, tt.want)
			}
		})
	}
}
