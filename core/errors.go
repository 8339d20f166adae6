/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package core

import (
	"fmt"

	"github.com/go-errors/errors"
)

// WrappedError is an error of a known kind (the sentinel) with a detailed cause.
// Both the sentinel and the cause can be matched using errors.Is.
type WrappedError struct {
	Sentinel error
	Cause    error
}

func (e WrappedError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s", e.Sentinel)
	}
	return fmt.Sprintf("%s: %s", e.Sentinel, e.Cause)
}

// Is reports whether other is the sentinel of this error.
func (e WrappedError) Is(other error) bool {
	return errors.Is(e.Sentinel, other)
}

func (e WrappedError) Unwrap() error {
	return e.Cause
}

// WrapError returns an error of the kind described by sentinel, caused by cause.
func WrapError(sentinel error, cause error) error {
	return WrappedError{Sentinel: sentinel, Cause: cause}
}

// WrapErrorf is like WrapError, but formats the cause according to a format specifier.
func WrapErrorf(sentinel error, format string, args ...interface{}) error {
	return WrappedError{Sentinel: sentinel, Cause: fmt.Errorf(format, args...)}
}
