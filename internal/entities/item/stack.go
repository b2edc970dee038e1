// Package item models the item stacks experience sources read from.
package item

import (
	"github.com/lamali292/one-piece-api/internal/identifier"
)

// Stack is a count of one item, optionally carrying an XP component.
type Stack struct {
	Item  identifier.Identifier `json:"item"`
	Count int                   `json:"count"`
	XP    *int                  `json:"xp,omitempty"`
}

// NewStack creates a stack without an XP component.
func NewStack(item identifier.Identifier, count int) *Stack {
	return &Stack{Item: item, Count: count}
}

// WithXP sets the XP component and returns the stack.
func (s *Stack) WithXP(xp int) *Stack {
	s.XP = &xp
	return s
}

// ExperienceComponent returns the XP component.
func (s *Stack) ExperienceComponent() (int, bool) {
	if s == nil || s.XP == nil {
		return 0, false
	}
	return *s.XP, true
}

// StripExperience removes the XP component.
func (s *Stack) StripExperience() {
	s.XP = nil
}

// IsEmpty reports whether the stack holds nothing.
func (s *Stack) IsEmpty() bool {
	return s == nil || s.Count <= 0
}
