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

package root

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/grigoriliev/lingua-bg/cnf"
	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/general"
	"github.com/grigoriliev/lingua-bg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := dictionary.NewStore()
	_, err := store.Add("вода", grammar.NewLabel(grammar.MustParseType("45")), dictionary.NoLemma)
	require.NoError(t, err)
	actions := &Actions{
		Version: general.VersionInfo{Version: "1.2.3"},
		Conf:    &cnf.Conf{},
		Store:   store,
	}
	engine := gin.New()
	engine.GET("/", actions.RootAction)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var resp rootResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1.2.3", resp.Version.Version)
	assert.Equal(t, 1, resp.StoreSize)
	assert.Empty(t, resp.SnapshotID)
}
