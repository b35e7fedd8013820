// SPDX-License-Identifier: MIT
// Package search: modes, constants and sentinel errors.

package search

import (
	"errors"
	"strconv"
)

// NotFound is the index returned together with ErrNotFound.
const NotFound = -1

// Mode selects what Search returns when the target is absent.
type Mode int

const (
	// ModeExact returns only an index holding the target.
	ModeExact Mode = iota

	// ModeFloor falls back to the greatest index whose element is below the target.
	ModeFloor

	// ModeCeil falls back to the least index whose element is above the target.
	ModeCeil
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "Exact"
	case ModeFloor:
		return "Floor"
	case ModeCeil:
		return "Ceil"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Method names used as error context.
const (
	MethodBinarySearch = "BinarySearch"
	MethodFloor        = "Floor"
	MethodCeil         = "Ceil"
	MethodSearch       = "Search"
)

var (
	// ErrNotFound is returned when no index satisfies the requested mode.
	ErrNotFound = errors.New("search: not found")

	// ErrUnknownMode is returned for a Mode outside {ModeExact, ModeFloor, ModeCeil}.
	ErrUnknownMode = errors.New("search: unknown mode")
)
