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
	"github.com/onflow/safemath/errors"
)

// Convert returns the given value converted to the type To,
// or errors.OverflowError if the value exceeds the range of To.
// Underflow is not possible, as all source types are unsigned.
//
// The type parameter for the source type is inferred from the argument,
// so only the target type needs to be named,
// e.g. Convert[uint8](value)
func Convert[To Unsigned, From Unsigned](value From) (To, error) {
	// uint64 is wide enough to represent every value of every source type
	if uint64(value) > uint64(MaxUint[To]()) {
		return 0, errors.OverflowError{}
	}
	return To(value), nil
}
