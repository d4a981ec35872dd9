// Copyright ©2024 The IPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipm

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"
)

// Recorder is the injected telemetry sink of §6/§9's "line-emitter"
// design note. The default Recorder writes to os.Stdout; tests inject one
// backed by a bytes.Buffer.
type Recorder interface {
	// Header writes the one-time column header.
	Header() error
	// Row writes one telemetry row for a completed iteration.
	Row(row TelemetryRow) error
}

// TelemetryRow is one line of iteration telemetry, per §6's column list:
// i, f(x), log10(μ), σ, ‖r_x‖, ‖r_c‖, α, ls.
type TelemetryRow struct {
	Iteration  int
	F          float64
	Mu         float64
	Sigma      float64
	RxNorm     float64
	RcNorm     float64
	Alpha      float64
	LineSearch int
}

// tabwriterRecorder formats telemetry as tab-separated cells padded by
// text/tabwriter, matching the plain tabular style the teacher's own
// command-line-adjacent tooling uses for columnar output. The writer is
// flushed after the header and after every row, so each line is padded on
// its own and columns are not aligned across lines.
type tabwriterRecorder struct {
	w *tabwriter.Writer
}

// NewRecorder returns a Recorder that writes telemetry lines to w, flushing
// each line as soon as it is written.
func NewRecorder(w io.Writer) Recorder {
	return &tabwriterRecorder{w: tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)}
}

func (r *tabwriterRecorder) Header() error {
	_, err := fmt.Fprintln(r.w, "i\tf(x)\tlog10(mu)\tsigma\t||rx||\t||rc||\talpha\tls")
	if err != nil {
		return err
	}
	return r.w.Flush()
}

func (r *tabwriterRecorder) Row(row TelemetryRow) error {
	logMu := math.Log10(row.Mu)
	_, err := fmt.Fprintf(r.w, "%d\t%g\t%g\t%g\t%g\t%g\t%g\t%d\n",
		row.Iteration, row.F, logMu, row.Sigma, row.RxNorm, row.RcNorm, row.Alpha, row.LineSearch)
	if err != nil {
		return err
	}
	return r.w.Flush()
}

// defaultRecorder is used when verbose is enabled and no Recorder has been
// supplied explicitly.
func defaultRecorder() Recorder { return NewRecorder(os.Stdout) }
