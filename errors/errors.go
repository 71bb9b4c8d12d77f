/*
 * Safemath - checked arithmetic for fixed-width unsigned integers
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errors

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"
)

// InternalError is an implementation error, e.g. an unreachable code path
// (UnreachableError). A program should never throw an InternalError.
//
// InternalError s must always be propagated up the call stack
// and not be caught (recovered).
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error in the calling code,
// e.g. an arithmetic operation on out-of-range operands.
type UserError interface {
	error
	IsUserError()
}

// UnreachableError

// UnreachableError is an internal error which should have never occurred
// due to a programming error.
//
// NOTE: this error is not used for failures of checked arithmetic.
// For those, see OverflowError, UnderflowError, and DivisionByZeroError.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (e UnreachableError) IsInternalError() {}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

// ErrorCode identifies one of the ways a checked arithmetic operation
// can fail. The set is closed: checked arithmetic on unsigned integers
// can only ever fail in one of these three ways.
//
// The numeric values are part of the external contract. Host execution
// environments match on them, so they must never be reordered or reused.
type ErrorCode uint32

const (
	ErrorCodeOverflow ErrorCode = iota
	ErrorCodeUnderflow
	ErrorCodeDivisionByZero
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeOverflow:
		return "overflow"
	case ErrorCodeUnderflow:
		return "underflow"
	case ErrorCodeDivisionByZero:
		return "division by zero"
	}

	panic(NewUnreachableError())
}

// CodedError is an error which corresponds to exactly one ErrorCode.
// All arithmetic failure errors implement it.
type CodedError interface {
	error
	ErrorCode() ErrorCode
}

// OverflowError

// OverflowError is reported when the result of an operation
// exceeds the maximum value representable by the operand type.
type OverflowError struct{}

var _ UserError = OverflowError{}
var _ CodedError = OverflowError{}

func (e OverflowError) Error() string {
	return "overflow"
}

func (e OverflowError) IsUserError() {}

func (e OverflowError) ErrorCode() ErrorCode {
	return ErrorCodeOverflow
}

// UnderflowError

// UnderflowError is reported when the result of an operation
// would be negative, which unsigned operand types cannot represent.
type UnderflowError struct{}

var _ UserError = UnderflowError{}
var _ CodedError = UnderflowError{}

func (e UnderflowError) Error() string {
	return "underflow"
}

func (e UnderflowError) IsUserError() {}

func (e UnderflowError) ErrorCode() ErrorCode {
	return ErrorCodeUnderflow
}

// DivisionByZeroError

// DivisionByZeroError is reported when the divisor
// of a division or modulo operation is zero.
type DivisionByZeroError struct{}

var _ UserError = DivisionByZeroError{}
var _ CodedError = DivisionByZeroError{}

func (e DivisionByZeroError) Error() string {
	return "division by zero"
}

func (e DivisionByZeroError) IsUserError() {}

func (e DivisionByZeroError) ErrorCode() ErrorCode {
	return ErrorCodeDivisionByZero
}

// HostError

// HostError is the representation of an arithmetic failure
// handed to the host execution environment. It carries the numeric
// error code the host matches on, instead of the error value itself.
//
// The conversion is one-directional: a HostError is produced from an
// arithmetic failure, never converted back.
type HostError struct {
	Code ErrorCode
}

var _ UserError = HostError{}

func (e HostError) Error() string {
	return fmt.Sprintf("host error %d: %s", uint32(e.Code), e.Code)
}

func (e HostError) IsUserError() {}

// NewHostError adapts an arithmetic failure into the host representation.
// It returns false if no CodedError is present in the error chain.
func NewHostError(err error) (HostError, bool) {
	code, ok := GetErrorCode(err)
	if !ok {
		return HostError{}, false
	}
	return HostError{Code: code}, true
}

// IsInternalError checks whether a given error was caused by an InternalError.
// An error is an internal error if it has at least one InternalError
// in the error chain.
func IsInternalError(err error) bool {
	switch err := err.(type) {
	case InternalError:
		return true
	case xerrors.Wrapper:
		return IsInternalError(err.Unwrap())
	default:
		return false
	}
}

// IsUserError checks whether a given error was caused by a UserError.
// An error is a user error if it has at least one UserError
// in the error chain.
func IsUserError(err error) bool {
	switch err := err.(type) {
	case UserError:
		return true
	case xerrors.Wrapper:
		return IsUserError(err.Unwrap())
	default:
		return false
	}
}

// GetErrorCode returns the error code of the CodedError
// in the error chain, if any
func GetErrorCode(err error) (ErrorCode, bool) {
	switch err := err.(type) {
	case CodedError:
		return err.ErrorCode(), true
	case xerrors.Wrapper:
		return GetErrorCode(err.Unwrap())
	default:
		return 0, false
	}
}
