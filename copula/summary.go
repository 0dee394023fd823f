// SPDX-License-Identifier: MIT
// Package: mixedsim/copula
//
// summary.go — human-readable rendering of a specification.

package copula

import (
	"fmt"
	"strings"

	"github.com/causaldata/mixedsim/model"
)

// Summary renders the declared variables and correlation targets, one line
// per item in declaration order. Intended for notebooks and logs, not for
// parsing; the format is not a compatibility surface.
func (s *Simulator) Summary() string {
	var b strings.Builder
	vars := s.reg.Variables()

	fmt.Fprintf(&b, "simulator: %d variable(s)\n", len(vars))
	for _, v := range vars {
		fmt.Fprintf(&b, "  %s: %s\n", v.Name, describe(v))
	}

	names := s.reg.Names()
	wrote := false
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if rho, ok := s.targets.Get(names[i], names[j]); ok {
				if !wrote {
					b.WriteString("correlations:\n")
					wrote = true
				}
				fmt.Fprintf(&b, "  %s ~ %s: %v\n", names[i], names[j], rho)
			}
		}
	}
	if !wrote {
		b.WriteString("correlations: none declared\n")
	}

	return b.String()
}

// describe renders one variable's marginal in distribution notation.
func describe(v model.Variable) string {
	switch v.Kind {
	case model.Continuous:
		p := v.Continuous
		s := fmt.Sprintf("Normal(mean=%v, std=%v)", p.Mean, p.Std)
		switch {
		case p.Min != nil && p.Max != nil:
			s += fmt.Sprintf(" clipped to [%v, %v]", *p.Min, *p.Max)
		case p.Min != nil:
			s += fmt.Sprintf(" clipped to [%v, +inf)", *p.Min)
		case p.Max != nil:
			s += fmt.Sprintf(" clipped to (-inf, %v]", *p.Max)
		}

		return s
	case model.Binary:
		return fmt.Sprintf("Bernoulli(p=%v)", v.Binary.Prob)
	case model.Ordinal:
		return fmt.Sprintf("Ordinal(levels=%v, probs=%v)", v.Ordinal.Levels, v.Ordinal.Probs)
	case model.Count:
		return fmt.Sprintf("Poisson(rate=%v)", v.Count.Rate)
	default:
		return v.Kind.String()
	}
}
