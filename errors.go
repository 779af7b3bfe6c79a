/*
 * errors.go, part of supercell.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package supercell

import (
	"fmt"
	"strings"
)

// Kinds of errors returned by the package. The kind of an error is used by
// Is, so errors.Is(err, ErrZeroMultiplier) works regardless of the message.
const (
	InvalidReplicationSpec = "Invalid system multipliers"
	ZeroMultiplier         = "Cannot multiply system dimension by zero"
	ReplicationOverflow    = "Replicated system is too large"
	PropertyMismatch       = "Property doesn't match the atoms"
	MissingProperty        = "Property not found"
	SingularBox            = "Box vectors are not linearly independent"
)

var (
	ErrInvalidReplicationSpec = CellError{kind: InvalidReplicationSpec}
	ErrZeroMultiplier         = CellError{kind: ZeroMultiplier}
	ErrReplicationOverflow    = CellError{kind: ReplicationOverflow}
	ErrPropertyMismatch       = CellError{kind: PropertyMismatch}
	ErrMissingProperty        = CellError{kind: MissingProperty}
	ErrSingularBox            = CellError{kind: SingularBox}
)

// CellError is the general structure for errors in this package. The Decorate method adds the
// name of a calling function to the error without wrapping it.
type CellError struct {
	kind    string
	message string //extra information, can be empty.
	deco    []string
}

func newError(kind, caller, format string, a ...interface{}) CellError {
	return CellError{kind: kind, message: fmt.Sprintf(format, a...), deco: []string{caller}}
}

func (err CellError) Error() string {
	if err.message == "" {
		return "supercell: " + err.kind
	}
	return fmt.Sprintf("supercell: %s: %s", err.kind, err.message)
}

// Kind returns the kind of the error, one of the constants of the package.
func (err CellError) Kind() string { return err.kind }

// Decorate adds new information to the error and returns the resulting decorations.
func (err CellError) Decorate(deco string) []string {
	//The receiver is a copy, so callers must keep the returned slice.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Trace returns the chain of functions the error went through, innermost first.
func (err CellError) Trace() string {
	return strings.Join(err.deco, " <- ")
}

// Is reports whether target is a CellError of the same kind.
func (err CellError) Is(target error) bool {
	t, ok := target.(CellError)
	return ok && t.kind == err.kind
}

// errDecorate adds the caller to the decorations of err, if err is a CellError.
func errDecorate(err error, caller string) error {
	e, ok := err.(CellError)
	if !ok {
		return err
	}
	e.deco = e.Decorate(caller)
	return e
}
