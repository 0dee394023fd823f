// SPDX-License-Identifier: MIT
// Package: mixedsim/copula
//
// dataset.go — the generated output table.

package copula

import (
	"github.com/causaldata/mixedsim/corr"
	"github.com/causaldata/mixedsim/transform"
)

// Dataset is one generated table: one typed column per declared variable,
// in declaration order. The caller owns it outright; the engine retains no
// reference, so datasets from repeated Generate calls are independent.
type Dataset struct {
	// Columns holds the realized variables in declaration order.
	Columns []transform.Column

	// Feasibility describes what PSD repair did to the declared
	// correlation matrix for this generation. When
	// Feasibility.Exceeds(tol), realized correlations deviate visibly
	// from the declared targets.
	Feasibility corr.Report

	// feasibilityTol is the per-call threshold behind Infeasible().
	feasibilityTol float64
}

// Rows returns the number of observations (identical across columns).
func (d *Dataset) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}

	return d.Columns[0].Len()
}

// Cols returns the number of variables.
func (d *Dataset) Cols() int { return len(d.Columns) }

// Names returns the column names in declaration order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name()
	}

	return names
}

// Column returns the column with the given name, or nil when absent.
// Linear scan: datasets have few columns and this is not a hot path.
func (d *Dataset) Column(name string) transform.Column {
	for _, c := range d.Columns {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// Infeasible reports whether PSD repair moved the declared correlation
// spectrum beyond the call's feasibility tolerance — the warning-level
// signal that the requested targets were not jointly realizable.
func (d *Dataset) Infeasible() bool {
	return d.Feasibility.Exceeds(d.feasibilityTol)
}
