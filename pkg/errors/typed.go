package errors

import (
	"fmt"
	"strings"
)

// CycleError reports a pedigree whose parent links (or partner alignment)
// form a cycle, so no generation depth can be assigned.
type CycleError struct {
	Members []int  // Arena indices of the individuals left on the cycle
	Reason  string // Optional detail, e.g. "partner alignment"
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	msg := "pedigree contains a cycle"
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	if len(e.Members) > 0 {
		parts := make([]string, len(e.Members))
		for i, m := range e.Members {
			parts[i] = fmt.Sprint(m)
		}
		msg += ": individuals " + strings.Join(parts, ", ")
	}
	return msg
}

// Code returns the error code for this error type.
func (e *CycleError) Code() Code { return ErrCodeCycle }

// LayoutInvariantError reports that a layout result does not have the
// shape the hint generator relies on: a duplicate occurrence without a
// partner next to it, or a sibling lookup on an unattached slot.
type LayoutInvariantError struct {
	Level int    // Depth level (row) of the layout
	Slot  int    // Slot position within the level
	What  string // Which expectation failed
}

// Error implements the error interface.
func (e *LayoutInvariantError) Error() string {
	return fmt.Sprintf("layout invariant violated at level %d slot %d: %s", e.Level, e.Slot, e.What)
}

// Code returns the error code for this error type.
func (e *LayoutInvariantError) Code() Code { return ErrCodeLayoutInvariant }

// UnclassifiedAnchorError reports an anchor combination for a duplicate
// pair that has no marriage-hint rule.
type UnclassifiedAnchorError struct {
	Key   string // Two-digit anchor key, e.g. "11"
	ID    int    // Arena index of the duplicated individual
	Level int
}

// Error implements the error interface.
func (e *UnclassifiedAnchorError) Error() string {
	return fmt.Sprintf("unclassified anchor combination %q for individual %d at level %d", e.Key, e.ID, e.Level)
}

// Code returns the error code for this error type.
func (e *UnclassifiedAnchorError) Code() Code { return ErrCodeUnclassifiedAnchor }
