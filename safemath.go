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

// Package safemath provides checked arithmetic for fixed-width unsigned
// integers. Every operation either returns the mathematically exact result,
// or fails with a typed error instead of silently wrapping around.
package safemath

import (
	"github.com/onflow/safemath/errors"
)

type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MaxUint returns the maximum value representable by the type T
func MaxUint[T Unsigned]() T {
	return ^T(0)
}

// Add returns the sum of the two given values,
// or errors.OverflowError if the sum exceeds the range of the type T
func Add[T Unsigned](a, b T) (T, error) {
	sum := a + b
	// INT30-C
	if sum < a {
		return 0, errors.OverflowError{}
	}
	return sum, nil
}

// Sub returns the difference of the two given values,
// or errors.UnderflowError if the difference would be negative
func Sub[T Unsigned](a, b T) (T, error) {
	diff := a - b
	// INT30-C
	if diff > a {
		return 0, errors.UnderflowError{}
	}
	return diff, nil
}

// Mul returns the product of the two given values,
// or errors.OverflowError if the product exceeds the range of the type T
func Mul[T Unsigned](a, b T) (T, error) {
	// INT30-C
	if (a > 0) && (b > 0) && (a > (MaxUint[T]() / b)) {
		return 0, errors.OverflowError{}
	}
	return a * b, nil
}

// Div returns the quotient of the two given values,
// or errors.DivisionByZeroError if the divisor is zero.
// Overflow is not possible for unsigned integer division.
func Div[T Unsigned](a, b T) (T, error) {
	if b == 0 {
		return 0, errors.DivisionByZeroError{}
	}
	return a / b, nil
}

// Mod returns the remainder of dividing the two given values,
// or errors.DivisionByZeroError if the divisor is zero
func Mod[T Unsigned](a, b T) (T, error) {
	if b == 0 {
		return 0, errors.DivisionByZeroError{}
	}
	return a % b, nil
}

// Pow returns the given base raised to the power of the given exponent,
// or errors.OverflowError if the result exceeds the range of the type T.
// The zeroth power of every base is 1, including that of base 0.
//
// Square-and-multiply, where every intermediate multiplication is checked,
// and the accumulator is returned immediately after the final multiplication,
// before the now unnecessary squaring of the base. An intermediate overflow
// therefore occurs if and only if the true result is out of range.
func Pow[T Unsigned](base T, exp uint32) (T, error) {
	if exp == 0 {
		return 1, nil
	}

	var err error
	acc := T(1)
	for {
		if exp&1 == 1 {
			acc, err = Mul(acc, base)
			if err != nil {
				return 0, err
			}
			if exp == 1 {
				return acc, nil
			}
		}
		exp >>= 1
		base, err = Mul(base, base)
		if err != nil {
			return 0, err
		}
	}
}
