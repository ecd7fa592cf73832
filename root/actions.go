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
	"net/http"
	"os"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/grigoriliev/lingua-bg/cnf"
	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/general"
)

type Actions struct {
	Version general.VersionInfo
	Conf    *cnf.Conf
	Store   *dictionary.Store
}

type rootResponse struct {
	Name       string              `json:"name"`
	Version    general.VersionInfo `json:"version"`
	Host       string              `json:"host"`
	ConfPath   string              `json:"confPath"`
	StoreSize  int                 `json:"storeSize"`
	SnapshotID string              `json:"snapshotId,omitempty"`
}

// RootAction godoc
// @Summary      Information about the service
// @Produce      json
// @Success      200 {object} rootResponse
// @Router       / [get]
func (a *Actions) RootAction(ctx *gin.Context) {
	host, err := os.Hostname()
	if err != nil {
		host = "#failed_to_obtain"
	}
	ans := rootResponse{
		Name:      "lingua-bg - Bulgarian morphological lexicon",
		Version:   a.Version,
		Host:      host,
		ConfPath:  a.Conf.GetSourcePath(),
		StoreSize: a.Store.Size(),
	}
	if origin, ok := a.Store.Origin(); ok {
		ans.SnapshotID = origin.ID
	}
	uniresp.WriteJSONResponseWithStatus(ctx.Writer, http.StatusOK, ans)
}
