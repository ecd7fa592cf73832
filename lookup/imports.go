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

package lookup

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/grigoriliev/lingua-bg/dictionary"
	"github.com/grigoriliev/lingua-bg/jobs"
	"github.com/grigoriliev/lingua-bg/resource"
	"github.com/grigoriliev/lingua-bg/vertimport"
	"github.com/rs/zerolog/log"
)

const (
	importTypeResource = "resource"
	importTypeVertical = "vertical"
)

type importArgs struct {
	// Type is either "resource" or "vertical"
	Type         string              `json:"type"`
	Paths        []string            `json:"paths"`
	Columns      *vertimport.Columns `json:"columns"`
	MaxNumErrors *int                `json:"maxNumErrors"`
	SaveSnapshot bool                `json:"saveSnapshot"`
}

func (args importArgs) validate() error {
	if args.Type != importTypeResource && args.Type != importTypeVertical {
		return fmt.Errorf("invalid import type %s", args.Type)
	}
	if len(args.Paths) == 0 {
		return fmt.Errorf("no files to import")
	}
	return nil
}

var (
	errImportsDisabled = errors.New("imports are disabled - import directory not configured")
	errPathNotAllowed  = errors.New("path must be relative to the import directory")
)

// importPaths resolves paths against the import directory.
// Absolute paths and paths leaving the directory are rejected.
func (a *Actions) importPaths(paths []string) ([]string, error) {
	if a.conf.ImportDir == "" {
		return nil, errImportsDisabled
	}
	ans := make([]string, len(paths))
	for i, p := range paths {
		if !filepath.IsLocal(p) {
			return nil, fmt.Errorf("%w: %s", errPathNotAllowed, p)
		}
		ans[i] = filepath.Join(a.conf.ImportDir, p)
	}
	return ans, nil
}

func (args importArgs) jobType() string {
	if args.Type == importTypeVertical {
		return jobs.JobTypeVerticalImport
	}
	return jobs.JobTypeResourceImport
}

func (a *Actions) runImport(args importArgs) (any, error) {
	switch args.Type {
	case importTypeResource:
		maxErrors := a.conf.ResourceMaxNumErrors
		if args.MaxNumErrors != nil {
			maxErrors = *args.MaxNumErrors
		}
		stats, err := resource.LoadFiles(
			a.ctx, args.Paths, a.store, resource.LoadWithMaxErrors(maxErrors))
		return stats, err
	case importTypeVertical:
		vargs := vertimport.Args{Verticals: args.Paths, Columns: args.Columns}
		if args.MaxNumErrors != nil {
			vargs.MaxNumErrors = *args.MaxNumErrors
		}
		stats, err := vertimport.ImportVerticals(a.ctx, a.store, vargs)
		return stats, err
	}
	return nil, fmt.Errorf("invalid import type %s", args.Type)
}

func (a *Actions) saveSnapshot() (string, error) {
	if a.conf.SnapshotPath == "" {
		return "", fmt.Errorf("snapshot path not configured")
	}
	hdr, err := dictionary.WriteSnapshotFile(a.store, a.conf.SnapshotPath)
	if err != nil {
		return "", err
	}
	log.Info().
		Str("snapshotId", hdr.ID).
		Int("numEntries", hdr.NumEntries).
		Str("path", a.conf.SnapshotPath).
		Msg("saved lexicon snapshot")
	return hdr.ID, nil
}

func (a *Actions) createImportJob(args importArgs, status jobs.ImportJobInfo) jobs.QueuedFunc {
	return func(upds chan<- jobs.GeneralJobInfo) {
		defer close(upds)
		stats, err := a.runImport(args)
		if err != nil {
			upds <- status.WithError(err)
			return
		}
		result := jobs.ImportJobResult{Stats: stats, StoreSize: a.store.Size()}
		if args.SaveSnapshot {
			result.SnapshotID, err = a.saveSnapshot()
			if err != nil {
				upds <- status.WithError(fmt.Errorf("failed to save snapshot: %w", err))
				return
			}
		}
		upds <- status.WithResult(result)
	}
}

// Import godoc
// @Summary      Import data into the lexicon
// @Description  Enqueues an import job. Imports are run one by one in the order they were requested.
// @Description  Paths are relative to the configured import directory.
// @Accept       json
// @Produce      json
// @Param        args body importArgs true "import arguments"
// @Success      201 {object} jobs.ImportJobInfo
// @Failure      400 {object} uniresp.ActionError
// @Failure      403 {object} uniresp.ActionError
// @Failure      429 {object} uniresp.ActionError
// @Router       /imports [post]
func (a *Actions) Import(ctx *gin.Context) {
	var args importArgs
	if err := ctx.BindJSON(&args); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if err := args.validate(); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if args.SaveSnapshot && a.conf.SnapshotPath == "" {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("cannot save snapshot - snapshot path not configured"), http.StatusBadRequest)
		return
	}
	resolved, err := a.importPaths(args.Paths)
	if errors.Is(err, errImportsDisabled) {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusForbidden)
		return

	} else if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	jobID, err := uuid.NewUUID()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	status := jobs.ImportJobInfo{
		ID:     jobID.String(),
		Type:   args.jobType(),
		Source: strings.Join(args.Paths, ", "),
		Start:  jobs.CurrentDatetime(),
		Update: jobs.CurrentDatetime(),
	}
	args.Paths = resolved
	fn := a.createImportJob(args, status)
	if err := a.jobActions.EnqueueJob(&fn, status); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, errorStatus(err))
		return
	}
	uniresp.WriteJSONResponseWithStatus(ctx.Writer, http.StatusCreated, status.FullInfo())
}
