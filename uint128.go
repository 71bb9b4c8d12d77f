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

package safemath

import (
	"fmt"
	"math/big"

	"github.com/onflow/safemath/errors"
)

var UInt128TypeMinIntBig = new(big.Int)

var UInt128TypeMaxIntBig = new(big.Int).Sub(
	new(big.Int).Lsh(big.NewInt(1), 128),
	big.NewInt(1),
)

// UInt128

// UInt128 is a 128-bit unsigned integer with the same checked operations
// as the narrower widths. It is backed by an arbitrary size integer,
// but presents the fixed range [0, 2^128-1].
//
// The zero value is not usable:
// construct values with NewUInt128 or NewUInt128FromBig.
// Operations never mutate their operands and always allocate a new result.
type UInt128 struct {
	Value *big.Int
}

func NewUInt128(value uint64) UInt128 {
	return UInt128{Value: new(big.Int).SetUint64(value)}
}

func NewUInt128FromBig(value *big.Int) (UInt128, error) {
	if value.Sign() < 0 {
		return UInt128{}, fmt.Errorf("invalid negative value for UInt128: %s", value)
	}
	if value.Cmp(UInt128TypeMaxIntBig) > 0 {
		return UInt128{}, fmt.Errorf("value exceeds max of UInt128: %s", value)
	}
	return UInt128{Value: new(big.Int).Set(value)}, nil
}

func MustUInt128FromBig(value *big.Int) UInt128 {
	v, err := NewUInt128FromBig(value)
	if err != nil {
		panic(err)
	}
	return v
}

// Add returns the sum of the two given values,
// or errors.OverflowError if the sum exceeds the range of UInt128
func (v UInt128) Add(other UInt128) (UInt128, error) {
	sum := new(big.Int)
	sum.Add(v.Value, other.Value)
	// Given that this value is backed by an arbitrary size integer,
	// we can just add and check the range of the result.
	//
	// If Go gains a native uint128 type and this value is switched
	// to be based on it, then the check must follow INT30-C:
	//
	//  if sum < v {
	//      ...
	//  }
	//
	if sum.Cmp(UInt128TypeMaxIntBig) > 0 {
		return UInt128{}, errors.OverflowError{}
	}
	return UInt128{Value: sum}, nil
}

// SaturatingAdd returns the sum of the two given values,
// saturating at the maximum value of UInt128
func (v UInt128) SaturatingAdd(other UInt128) UInt128 {
	sum := new(big.Int)
	sum.Add(v.Value, other.Value)
	if sum.Cmp(UInt128TypeMaxIntBig) > 0 {
		return UInt128{Value: new(big.Int).Set(UInt128TypeMaxIntBig)}
	}
	return UInt128{Value: sum}
}

// Sub returns the difference of the two given values,
// or errors.UnderflowError if the difference would be negative
func (v UInt128) Sub(other UInt128) (UInt128, error) {
	diff := new(big.Int)
	diff.Sub(v.Value, other.Value)
	// Given that this value is backed by an arbitrary size integer,
	// we can just subtract and check the range of the result.
	//
	// If Go gains a native uint128 type and this value is switched
	// to be based on it, then the check must follow INT30-C:
	//
	//   if diff > v {
	//       ...
	//   }
	//
	if diff.Cmp(UInt128TypeMinIntBig) < 0 {
		return UInt128{}, errors.UnderflowError{}
	}
	return UInt128{Value: diff}, nil
}

// SaturatingSub returns the difference of the two given values,
// saturating at zero
func (v UInt128) SaturatingSub(other UInt128) UInt128 {
	diff := new(big.Int)
	diff.Sub(v.Value, other.Value)
	if diff.Cmp(UInt128TypeMinIntBig) < 0 {
		return UInt128{Value: new(big.Int)}
	}
	return UInt128{Value: diff}
}

// Mul returns the product of the two given values,
// or errors.OverflowError if the product exceeds the range of UInt128
func (v UInt128) Mul(other UInt128) (UInt128, error) {
	res := new(big.Int)
	res.Mul(v.Value, other.Value)
	if res.Cmp(UInt128TypeMaxIntBig) > 0 {
		return UInt128{}, errors.OverflowError{}
	}
	return UInt128{Value: res}, nil
}

// SaturatingMul returns the product of the two given values,
// saturating at the maximum value of UInt128
func (v UInt128) SaturatingMul(other UInt128) UInt128 {
	res := new(big.Int)
	res.Mul(v.Value, other.Value)
	if res.Cmp(UInt128TypeMaxIntBig) > 0 {
		return UInt128{Value: new(big.Int).Set(UInt128TypeMaxIntBig)}
	}
	return UInt128{Value: res}
}

// Div returns the quotient of the two given values,
// or errors.DivisionByZeroError if the divisor is zero.
// Overflow is not possible for unsigned integer division.
func (v UInt128) Div(other UInt128) (UInt128, error) {
	res := new(big.Int)
	if other.Value.Cmp(res) == 0 {
		return UInt128{}, errors.DivisionByZeroError{}
	}
	res.Div(v.Value, other.Value)
	return UInt128{Value: res}, nil
}

// Mod returns the remainder of dividing the two given values,
// or errors.DivisionByZeroError if the divisor is zero
func (v UInt128) Mod(other UInt128) (UInt128, error) {
	res := new(big.Int)
	if other.Value.Cmp(res) == 0 {
		return UInt128{}, errors.DivisionByZeroError{}
	}
	res.Rem(v.Value, other.Value)
	return UInt128{Value: res}, nil
}

// Pow returns the value raised to the power of the given exponent,
// or errors.OverflowError if the result exceeds the range of UInt128.
// The zeroth power of every value is 1, including that of value 0.
//
// Same square-and-multiply as the package-level Pow, with the range check
// applied after every multiplication, so intermediates stay bounded
// and failure is reported without computing the full result.
func (v UInt128) Pow(exp uint32) (UInt128, error) {
	if exp == 0 {
		return NewUInt128(1), nil
	}

	base := new(big.Int).Set(v.Value)
	acc := big.NewInt(1)
	for {
		if exp&1 == 1 {
			acc.Mul(acc, base)
			if acc.Cmp(UInt128TypeMaxIntBig) > 0 {
				return UInt128{}, errors.OverflowError{}
			}
			if exp == 1 {
				return UInt128{Value: acc}, nil
			}
		}
		exp >>= 1
		base.Mul(base, base)
		if base.Cmp(UInt128TypeMaxIntBig) > 0 {
			return UInt128{}, errors.OverflowError{}
		}
	}
}

// Uint64 returns the value as a uint64,
// or errors.OverflowError if it exceeds the range of uint64
func (v UInt128) Uint64() (uint64, error) {
	if !v.Value.IsUint64() {
		return 0, errors.OverflowError{}
	}
	return v.Value.Uint64(), nil
}

// Big returns the value as a new big integer.
// The result is a copy and may be mutated freely.
func (v UInt128) Big() *big.Int {
	return new(big.Int).Set(v.Value)
}

func (v UInt128) Cmp(other UInt128) int {
	return v.Value.Cmp(other.Value)
}

func (v UInt128) Equal(other UInt128) bool {
	return v.Value.Cmp(other.Value) == 0
}

func (v UInt128) String() string {
	return v.Value.String()
}

func (v UInt128) ToBigEndianBytes() []byte {
	b := make([]byte, 16)
	v.Value.FillBytes(b)
	return b
}
