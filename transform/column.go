// SPDX-License-Identifier: MIT
// Package: mixedsim/transform
//
// column.go — the closed set of typed output columns.
//
// Design:
//   - Column is a small read-only interface (name, length, kind); the data
//     lives in one concrete type per representation. Callers that need the
//     values type-assert to the concrete column, which the kind tag makes
//     unambiguous: Continuous→FloatColumn, Binary|Count→IntColumn,
//     Ordinal→LabelColumn.

package transform

import "github.com/causaldata/mixedsim/model"

// Column is one realized variable of a generated dataset.
type Column interface {
	// Name returns the declared variable name.
	Name() string

	// Len returns the number of realized observations.
	Len() int

	// Kind returns the marginal family the column was realized under.
	Kind() model.Kind
}

// FloatColumn holds continuous observations.
type FloatColumn struct {
	ColName string
	Values  []float64
}

func (c *FloatColumn) Name() string     { return c.ColName }
func (c *FloatColumn) Len() int         { return len(c.Values) }
func (c *FloatColumn) Kind() model.Kind { return model.Continuous }

// IntColumn holds integer observations: binary 0/1 or Poisson counts,
// distinguished by ColKind.
type IntColumn struct {
	ColName string
	ColKind model.Kind
	Values  []int
}

func (c *IntColumn) Name() string     { return c.ColName }
func (c *IntColumn) Len() int         { return len(c.Values) }
func (c *IntColumn) Kind() model.Kind { return c.ColKind }

// LabelColumn holds ordinal observations as their declared labels.
type LabelColumn struct {
	ColName string
	Values  []string
}

func (c *LabelColumn) Name() string     { return c.ColName }
func (c *LabelColumn) Len() int         { return len(c.Values) }
func (c *LabelColumn) Kind() model.Kind { return model.Ordinal }
