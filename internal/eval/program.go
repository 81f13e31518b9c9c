// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"strconv"

	"github.com/danswartzendruber/avl"

	"nickandperla.net/joss/internal/ast"
)

// Step is one stored command, held in its part's tree in numeric step order.
type Step struct {
	node avl.AvlNode
	step float64
	cmd  ast.Command
}

// Label returns the step's full part.step label value.
func (s *Step) Label() float64 { return s.step }

// Command returns the stored command.
func (s *Step) Command() ast.Command { return s.cmd }

// Program is the stored-command table: one AVL tree per part, keyed by the
// numeric step value, so insertion lands at the correct sort position and
// Do part walks steps in ascending numeric order no matter how they were
// registered.
type Program struct {
	parts map[int]*partTree
}

type partTree struct {
	root *avl.AvlNode
}

// NewProgram creates an empty program store.
func NewProgram() *Program {
	return &Program{parts: make(map[int]*partTree)}
}

func cmpStepNode(a, b any) int {
	return cmpSteps(a.(*Step).step, b.(*Step).step)
}

func cmpStepKey(key, node any) int {
	return cmpSteps(key.(float64), node.(*Step).step)
}

func cmpSteps(a, b float64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// SetStep registers a command under part/step. Re-registering an existing
// step replaces its command in place, preserving its tree position.
func (p *Program) SetStep(part int, step float64, cmd ast.Command) {
	pt, ok := p.parts[part]
	if !ok {
		pt = &partTree{}
		p.parts[part] = pt
	}

	if existing := avl.AvlTreeLookup(pt.root, step, cmpStepKey); existing != nil {
		existing.(*Step).cmd = cmd
		return
	}

	n := &Step{step: step, cmd: cmd}
	avl.AvlTreeInsert(&pt.root, &n.node, n, cmpStepNode)
}

// GetStep retrieves the command stored at part/step.
func (p *Program) GetStep(part int, step float64) (ast.Command, error) {
	pt, ok := p.parts[part]
	if ok {
		if n := avl.AvlTreeLookup(pt.root, step, cmpStepKey); n != nil {
			return n.(*Step).cmd, nil
		}
	}
	return ast.Command{}, bindingErrf("step %s is not defined",
		strconv.FormatFloat(step, 'f', -1, 64))
}

// PartSteps returns the part's steps in ascending numeric step order.
func (p *Program) PartSteps(part int) []*Step {
	pt, ok := p.parts[part]
	if !ok {
		return nil
	}
	var steps []*Step
	for it := avl.AvlTreeFirstInOrder(pt.root); it != nil; {
		s := it.(*Step)
		steps = append(steps, s)
		it = avl.AvlTreeNextInOrder(&s.node)
	}
	return steps
}
