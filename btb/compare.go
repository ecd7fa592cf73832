// Copyright 2026 Grigor Iliev <grigor@grigoriliev.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package btb

// DifferentTags compares two tags position by position over the
// length of the shorter one. An unset position ('-') in either
// of the tags matches anything.
func DifferentTags(tag1, tag2 string) bool {
	size := min(len(tag1), len(tag2))
	for i := 0; i < size; i++ {
		if tag1[i] == unset || tag2[i] == unset {
			continue
		}
		if tag1[i] != tag2[i] {
			return true
		}
	}
	return false
}

// HasFeatures tests whether tag contains all the features
// (i.e. non-'-' positions) of features.
func HasFeatures(tag, features string) bool {
	for i := 0; i < len(features); i++ {
		if features[i] == unset {
			continue
		}
		if i >= len(tag) || features[i] != tag[i] {
			return false
		}
	}
	return true
}
