package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	testutil "github.com/hcmut-hub/tkb/tests"
)

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
}

func writeCatalogJSON(t *testing.T, dir string) string {
	data, err := json.Marshal(testutil.SampleCatalog())
	if err != nil {
		t.Fatalf("marshaling catalog: %v", err)
	}
	path := filepath.Join(dir, "courses.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}
	return path
}

func Test_commandLine_run(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeCatalogJSON(t, dir)
	gobPath := filepath.Join(dir, "courses.gob")

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "compilecatalog: no args", args: []string{"compilecatalog"}, wantErr: errHelp},
		{name: "compilecatalog: missing in", args: []string{"compilecatalog", "-out", gobPath}, wantErr: errHelp},
		{
			name:    "compilecatalog",
			args:    []string{"compilecatalog", "-in", jsonPath, "-out", gobPath},
			wantOut: []string{"4 courses compiled to"},
		},
		{name: "cachestats: no catalog", args: []string{"cachestats"}, wantErr: errHelp},
		{
			name:       "cachestats: bad base date",
			args:       []string{"cachestats", "-catalog", jsonPath, "-base", "lol"},
			wantErrStr: `invalid base date "lol"`,
		},
		{
			name: "cachestats: json catalog",
			args: []string{"cachestats", "-catalog", jsonPath, "-base", "2025-08-25"},
			wantOut: []string{
				"courses:     4",
				"groups:      5",
				"schedules:   6 (1 with unknown weekday)",
				"identities:  6",
				"occurrences: 16",
			},
		},
		{
			// the precompiled catalog must expand identically
			name: "cachestats: gob catalog",
			args: []string{"cachestats", "-catalog", gobPath, "-base", "2025-08-25"},
			wantOut: []string{
				"courses:     4",
				"identities:  6",
				"occurrences: 16",
			},
		},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cli := &commandLine{out: &out}

			err := cli.run(args)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if tt.wantErrStr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrStr) {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
				return
			}
			if err != nil {
				t.Fatalf("cli.run() unexpected error = %v", err)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("cli.run() output = %q, want it to contain %q", out.String(), want)
				}
			}
		})
	}
}
