package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/katalvlaran/cliquesat/core"
	"github.com/katalvlaran/cliquesat/dimacs"
	"github.com/katalvlaran/cliquesat/monitor"
)

// report is the JSON document a solve command prints.
type report struct {
	RunID      string          `json:"run_id,omitempty"`
	Solver     string          `json:"solver"`
	Instance   string          `json:"instance"`
	Order      int             `json:"order"`
	Edges      int             `json:"edges"`
	Status     string          `json:"status"`
	Size       int             `json:"size"`
	Clique     []int           `json:"clique"`
	ElapsedSec float64         `json:"elapsed_seconds"`
	KnownOmega int             `json:"known_omega,omitempty"`
	Stats      any             `json:"stats"`
	Estimate   *estimateReport `json:"estimate,omitempty"`
}

type estimateReport struct {
	Method       string  `json:"method"`
	Rate         float64 `json:"rate"`
	RemainingSec float64 `json:"remaining_seconds"`
	TotalSec     float64 `json:"total_seconds"`
	Progress     float64 `json:"progress,omitempty"`
	Summary      string  `json:"summary"`
}

func newReport(solver, path string, g *core.Graph, m *monitor.Monitor) report {
	r := report{
		Solver:   solver,
		Instance: path,
		Order:    g.Order(),
		Edges:    g.Size(),
	}
	if m != nil {
		r.RunID = m.RunID().String()
	}
	if in, ok := dimacs.Lookup(path); ok {
		r.KnownOmega = in.Omega
	}

	return r
}

func (r *report) finish(clique []int, elapsed time.Duration, est *monitor.Estimate) {
	r.Clique = clique
	r.Size = len(clique)
	r.ElapsedSec = elapsed.Seconds()
	if est != nil {
		r.Estimate = &estimateReport{
			Method:       est.Method,
			Rate:         est.Rate,
			RemainingSec: est.Remaining.Seconds(),
			TotalSec:     est.Total.Seconds(),
			Progress:     est.Progress,
			Summary:      est.String(),
		}
	}
}

func (r report) write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
