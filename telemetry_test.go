// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTabwriterRecorderHeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)

	if err := rec.Header(); err != nil {
		t.Fatalf("Header returned unexpected error: %v", err)
	}
	row := TelemetryRow{Iteration: 1, F: 2.5, Mu: 0.1, Sigma: 0.5, RxNorm: 1.2, RcNorm: 0.3, Alpha: 0.9, LineSearch: 2}
	if err := rec.Row(row); err != nil {
		t.Fatalf("Row returned unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (header + one row)", len(lines))
	}

	wantHeaderFields := []string{"i", "f(x)", "log10(mu)", "sigma", "||rx||", "||rc||", "alpha", "ls"}
	gotHeaderFields := strings.Fields(lines[0])
	if diff := cmp.Diff(wantHeaderFields, gotHeaderFields); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestTelemetryRowRoundTripsThroughMultipleRows(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)
	rec.Header()

	rows := []TelemetryRow{
		{Iteration: 1, F: 1, Mu: 0.5, Sigma: 0.5, RxNorm: 1, RcNorm: 1, Alpha: 1, LineSearch: 0},
		{Iteration: 2, F: 0.5, Mu: 0.25, Sigma: 0.4, RxNorm: 0.5, RcNorm: 0.5, Alpha: 0.9, LineSearch: 1},
	}
	for _, r := range rows {
		if err := rec.Row(r); err != nil {
			t.Fatalf("Row returned unexpected error: %v", err)
		}
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1+len(rows) {
		t.Fatalf("got %d lines, want %d", len(lines), 1+len(rows))
	}

	wantIterationColumns := []string{"1", "2"}
	var gotIterationColumns []string
	for _, line := range lines[1:] {
		gotIterationColumns = append(gotIterationColumns, strings.Fields(line)[0])
	}
	if diff := cmp.Diff(wantIterationColumns, gotIterationColumns); diff != "" {
		t.Errorf("iteration column mismatch (-want +got):\n%s", diff)
	}
}
