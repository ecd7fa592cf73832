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

package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobRecorder struct {
	mu         sync.Mutex
	running    int
	maxRunning int
	order      []string
}

func (r *jobRecorder) mkJob(id string, err error) (*QueuedFunc, ImportJobInfo) {
	info := ImportJobInfo{ID: id, Type: JobTypeResourceImport, Source: id + ".txt", Start: CurrentDatetime()}
	fn := func(upds chan<- GeneralJobInfo) {
		defer close(upds)
		r.mu.Lock()
		r.running++
		r.maxRunning = max(r.maxRunning, r.running)
		r.order = append(r.order, id)
		r.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		r.mu.Lock()
		r.running--
		r.mu.Unlock()
		if err != nil {
			upds <- info.WithError(err)
			return
		}
		upds <- info.WithResult(ImportJobResult{StoreSize: 1})
	}
	return &fn, info
}

func allFinished(a *Actions) func() bool {
	return func() bool {
		for _, job := range a.ListJobs() {
			if !job.IsFinished() {
				return false
			}
		}
		return true
	}
}

func TestJobsRunOneByOne(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	actions := NewActions(&Conf{MaxQueueSize: 10}, "en", ctx)
	rec := &jobRecorder{}
	for _, id := range []string{"a", "b", "c"} {
		fn, info := rec.mkJob(id, nil)
		require.NoError(t, actions.EnqueueJob(fn, info))
	}
	assert.Eventually(t, allFinished(actions), 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, rec.maxRunning)
	assert.Equal(t, []string{"a", "b", "c"}, rec.order)
	job, ok := actions.GetJob("b")
	require.True(t, ok)
	assert.NoError(t, job.GetError())
	assert.True(t, job.CompactVersion().OK)
}

func TestFailedJob(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	actions := NewActions(&Conf{}, "en", ctx)
	rec := &jobRecorder{}
	fn, info := rec.mkJob("x", errors.New("broken resource"))
	require.NoError(t, actions.EnqueueJob(fn, info))
	assert.Eventually(t, allFinished(actions), 2*time.Second, 5*time.Millisecond)
	job, ok := actions.GetJob("x")
	require.True(t, ok)
	assert.EqualError(t, job.GetError(), "broken resource")
	assert.False(t, job.CompactVersion().OK)
}

func TestJobHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	actions := NewActions(&Conf{MaxQueueSize: 10}, "en", ctx)
	rec := &jobRecorder{}
	fn, info := rec.mkJob("job1", nil)
	require.NoError(t, actions.EnqueueJob(fn, info))
	assert.Eventually(t, allFinished(actions), 2*time.Second, 5*time.Millisecond)

	engine := gin.New()
	engine.GET("/jobs", actions.JobList)
	engine.GET("/jobs/:jobId", actions.JobInfo)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/job1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Description   string `json:"description"`
		Status        string `json:"status"`
		QueuePosition int    `json:"queuePosition"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Import of a lexicon resource", resp.Description)
	assert.Equal(t, "Job finished without errors", resp.Status)
	assert.Equal(t, -1, resp.QueuePosition)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var list []struct {
		Source   string `json:"source"`
		Finished bool   `json:"finished"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "job1.txt", list[0].Source)
	assert.True(t, list[0].Finished)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/nonexisting", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
