/*
 * errors.go, part of supercell.
 *
 * Copyright 2014 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import "fmt"

// Error is the error type returned by the few functions in v3 that return errors
// instead of panicking.
type Error struct {
	message string
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("supercell/v3: %s", err.message)
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("supercell/v3: A Matrix should have 3 columns")
	ErrShape           = PanicMsg("supercell/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("supercell/v3: index out of range")
)
