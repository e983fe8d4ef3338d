// Package crates simulates a yard of crate stacks being rearranged by
// a crane, one move instruction at a time.
package crates

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoStack is returned when a move names a stack index outside
	// the yard.
	ErrNoStack = errors.New("crates: no such stack")

	// ErrUnderflow is returned when a move asks for more crates than
	// its source stack holds.
	ErrUnderflow = errors.New("crates: not enough crates")
)

// Mode selects the crane's transfer semantics for a whole run, never
// per instruction.
type Mode int

const (
	// OneAtATime pops and pushes a single crate per lift, so a moved
	// block ends up in reverse order.
	OneAtATime Mode = iota

	// AllAtOnce lifts the whole block in one go, preserving its
	// internal order.
	AllAtOnce
)

// Stack is a pile of labelled crates. Crates enter and leave at the top
// only.
type Stack struct {
	labels []byte
}

// Push puts a crate on top.
func (s *Stack) Push(label byte) {
	s.labels = append(s.labels, label)
}

// Len returns the number of crates on the stack.
func (s *Stack) Len() int { return len(s.labels) }

// Top returns the topmost crate label, or false for an empty stack.
func (s *Stack) Top() (byte, bool) {
	if len(s.labels) == 0 {
		return 0, false
	}
	return s.labels[len(s.labels)-1], true
}

// take removes the top n crates and returns them bottom-to-top.
func (s *Stack) take(n int) ([]byte, error) {
	if n > len(s.labels) {
		return nil, fmt.Errorf("take %d of %d: %w", n, len(s.labels), ErrUnderflow)
	}
	cut := len(s.labels) - n
	block := s.labels[cut:]
	s.labels = s.labels[:cut]
	return block, nil
}

// Move is one crane instruction: lift Count crates off stack From and
// drop them on stack To. Indices are 1-based.
type Move struct {
	Count int
	From  int
	To    int
}

// Yard is the ordered collection of stacks, indexed from 1.
type Yard struct {
	stacks []*Stack
}

// NewYard returns a yard of n empty stacks.
func NewYard(n int) *Yard {
	stacks := make([]*Stack, n)
	for i := range stacks {
		stacks[i] = &Stack{}
	}
	return &Yard{stacks: stacks}
}

// Size returns the number of stacks in the yard.
func (y *Yard) Size() int { return len(y.stacks) }

// Stack returns the 1-indexed stack i.
func (y *Yard) Stack(i int) (*Stack, error) {
	if i < 1 || i > len(y.stacks) {
		return nil, fmt.Errorf("stack %d of %d: %w", i, len(y.stacks), ErrNoStack)
	}
	return y.stacks[i-1], nil
}

// Apply executes one move under the given mode.
func (y *Yard) Apply(m Move, mode Mode) error {
	src, err := y.Stack(m.From)
	if err != nil {
		return err
	}
	dst, err := y.Stack(m.To)
	if err != nil {
		return err
	}
	block, err := src.take(m.Count)
	if err != nil {
		return fmt.Errorf("move %d from %d to %d: %w", m.Count, m.From, m.To, err)
	}
	switch mode {
	case OneAtATime:
		// Each crate is lifted off the top of the block in turn.
		for i := len(block) - 1; i >= 0; i-- {
			dst.Push(block[i])
		}
	case AllAtOnce:
		for _, label := range block {
			dst.Push(label)
		}
	}
	return nil
}

// ApplyAll executes every move in order, stopping at the first error.
func (y *Yard) ApplyAll(moves []Move, mode Mode) error {
	for _, m := range moves {
		if err := y.Apply(m, mode); err != nil {
			return err
		}
	}
	return nil
}

// Tops concatenates the top crate label of every stack, left to right.
// Empty stacks contribute nothing.
func (y *Yard) Tops() string {
	var b strings.Builder
	for _, s := range y.stacks {
		if label, ok := s.Top(); ok {
			b.WriteByte(label)
		}
	}
	return b.String()
}
