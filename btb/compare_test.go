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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifferentTags(t *testing.T) {
	assert.False(t, DifferentTags("Nmsi-", "Nmsi-"))
	assert.False(t, DifferentTags("N--s-", "Nmfs-"))
	assert.True(t, DifferentTags("Nmsi-", "Nfsi-"))
	assert.False(t, DifferentTags("Ncmsi", "Ncm"))
	assert.False(t, DifferentTags("", "Ncm"))
}

func TestHasFeatures(t *testing.T) {
	assert.True(t, HasFeatures("Ncmsi", "N-m"))
	assert.False(t, HasFeatures("Ncmsi", "N-f"))
	assert.False(t, HasFeatures("Nc", "Nc-s"))
	assert.True(t, HasFeatures("Nc", "Nc--"))
	assert.True(t, HasFeatures("Ncmsi", ""))
}
