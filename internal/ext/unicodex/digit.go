// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unicodex

// Digit returns the value of the digit d in the given base, which may be at
// most 36. Letters are digits from ten upwards, in either case.
func Digit(d rune, base int) (int, bool) {
	var v int
	switch lower := d | 0x20; {
	case d >= '0' && d <= '9':
		v = int(d - '0')
	case lower >= 'a' && lower <= 'z':
		v = int(lower-'a') + 10
	default:
		return 0, false
	}

	if v >= base {
		return 0, false
	}
	return v, true
}
