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

// SaturatingAdd returns the sum of the two given values,
// saturating at the maximum value of the type T
func SaturatingAdd[T Unsigned](a, b T) T {
	sum := a + b
	// INT30-C
	if sum < a {
		return MaxUint[T]()
	}
	return sum
}

// SaturatingSub returns the difference of the two given values,
// saturating at zero
func SaturatingSub[T Unsigned](a, b T) T {
	diff := a - b
	// INT30-C
	if diff > a {
		return 0
	}
	return diff
}

// SaturatingMul returns the product of the two given values,
// saturating at the maximum value of the type T
func SaturatingMul[T Unsigned](a, b T) T {
	// INT30-C
	if (a > 0) && (b > 0) && (a > (MaxUint[T]() / b)) {
		return MaxUint[T]()
	}
	return a * b
}
