package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gmltools/gml/features"
)

const squareGML = `<gml><drawing>
<stroke>
<pt><x>0</x><y>0</y><t>0</t></pt>
<pt><x>0</x><y>2</y><t>1</t></pt>
<pt><x>2</x><y>2</y><t>2</t></pt>
<pt><x>2</x><y>0</y><t>3</t></pt>
</stroke>
</drawing></gml>`

func writeTags(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(squareGML), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func readRows(t *testing.T, r io.Reader) [][]string {
	t.Helper()
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return rows
}

func TestRun_Directory(t *testing.T) {
	dir := writeTags(t, "a.gml", "b.gml")

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-dir", dir}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	rows := readRows(t, &stdout)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(features.Header, ",") {
		t.Errorf("header = %v", rows[0])
	}
	if !strings.Contains(stderr.String(), "features written") {
		t.Errorf("missing summary log: %s", stderr.String())
	}
}

func TestRun_DedupeAndOutputFile(t *testing.T) {
	dir := writeTags(t, "a.gml", "b.gml", "c.gml")
	out := filepath.Join(t.TempDir(), "out.csv")

	var stdout, stderr bytes.Buffer
	args := []string{"-dir", dir, "-dedupe", "-normalize", "-o", out}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows := readRows(t, f)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header plus one deduplicated tag", len(rows))
	}
	if got := rows[1][0]; got != filepath.Join(dir, "a.gml") {
		t.Errorf("kept %s, want the first file", got)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no input", nil, errNoInput},
		{"help", []string{"-h"}, flag.ErrHelp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args, io.Discard, io.Discard)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRun_BadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.gml")
	if err := os.WriteFile(path, []byte("<gml><drawing><stroke><pt><x>1</x></pt></stroke></drawing></gml>"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(context.Background(), []string{path}, io.Discard, io.Discard); err == nil {
		t.Error("expected error for a point without <y>")
	}
}

func TestParseFlags_OverrideConfig(t *testing.T) {
	env := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(env, []byte("GMLFEATURES_WORKERS=2\nGMLFEATURES_SMOOTH=true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, res, err := parseFlags([]string{"-env", env, "-workers", "5", "-debug", "x.gml"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Workers != 5 {
		t.Errorf("Workers = %d, want flag value 5", cfg.Workers)
	}
	if !cfg.Smooth {
		t.Error("Smooth from .env was lost")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if len(res.files) != 1 || res.files[0] != "x.gml" {
		t.Errorf("files = %v", res.files)
	}
}
