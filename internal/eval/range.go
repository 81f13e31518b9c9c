// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "nickandperla.net/joss/internal/ast"

// rangeIter lazily yields the values of a range, term by term in textual
// order. A stepped term start(step)end yields start, start+step, ... while
// strictly below end; the bound stays a plain < comparison, so a
// non-positive step produces an empty or non-terminating run exactly as the
// literal check dictates.
type rangeIter struct {
	ev    *Evaluator
	sc    *scope
	terms []ast.RangeTerm
	idx   int

	inRun bool
	cur   float64
	step  float64
	end   float64
}

func (e *Evaluator) newRangeIter(r *ast.Range, sc *scope) *rangeIter {
	return &rangeIter{ev: e, sc: sc, terms: r.Terms}
}

// Next yields the next range value; ok is false when the range is done.
func (it *rangeIter) Next() (v float64, ok bool, err error) {
	for {
		if it.inRun {
			if it.cur < it.end {
				v = it.cur
				it.cur += it.step
				return v, true, nil
			}
			it.inRun = false
			it.idx++
		}

		if it.idx >= len(it.terms) {
			return 0, false, nil
		}
		term := it.terms[it.idx]

		start, err := it.evalNumber(term.Start)
		if err != nil {
			return 0, false, err
		}
		if term.Step == nil {
			it.idx++
			return start, true, nil
		}

		step, err := it.evalNumber(term.Step)
		if err != nil {
			return 0, false, err
		}
		end, err := it.evalNumber(term.End)
		if err != nil {
			return 0, false, err
		}
		it.inRun, it.cur, it.step, it.end = true, start, step, end
	}
}

func (it *rangeIter) evalNumber(x ast.Expr) (float64, error) {
	v, err := it.ev.evalExpr(x, it.sc)
	if err != nil {
		return 0, err
	}
	return toNumber(v)
}
