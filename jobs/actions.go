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
	"errors"
	"net/http"
	"sort"
	"sync"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Actions keeps track of import jobs and runs them one by one
// in a single worker goroutine. This ensures the lexicon store
// is never written by two jobs at the same time.
type Actions struct {
	conf        *Conf
	ctx         context.Context
	jobList     *collections.ConcurrentMap[string, GeneralJobInfo]
	jobOrder    []string
	queue       *JobQueue
	queueMu     sync.Mutex
	wakeUp      chan struct{}
	defaultLang string
}

type jobInfoResponse struct {
	Info          any    `json:"info"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	QueuePosition int    `json:"queuePosition"`
}

func (a *Actions) runWorker() {
	for {
		select {
		case <-a.ctx.Done():
			log.Info().Msg("stopping job worker")
			return
		case <-a.wakeUp:
			for a.runNext() {
			}
		}
	}
}

// runNext runs the next job from the queue (if any) and waits
// for it to finish
func (a *Actions) runNext() bool {
	select {
	case <-a.ctx.Done():
		return false
	default:
	}
	a.queueMu.Lock()
	fn, initialState, err := a.queue.Dequeue()
	a.queueMu.Unlock()
	if err != nil {
		return false
	}
	log.Info().
		Str("jobId", initialState.GetID()).
		Str("jobType", initialState.GetType()).
		Msg("starting job")
	upds := make(chan GeneralJobInfo, 10)
	go (*fn)(upds)
	last := initialState
	for upd := range upds {
		a.jobList.Set(upd.GetID(), upd)
		last = upd
	}
	if !last.IsFinished() {
		last = last.AsFinished()
		a.jobList.Set(last.GetID(), last)
	}
	if last.GetError() != nil {
		log.Error().Err(last.GetError()).Str("jobId", last.GetID()).Msg("job failed")

	} else {
		log.Info().Str("jobId", last.GetID()).Msg("job finished")
	}
	return true
}

// EnqueueJob adds a job to the queue. In case the queue
// is full, ErrorQueueFull is returned.
func (a *Actions) EnqueueJob(fn *QueuedFunc, initialState GeneralJobInfo) error {
	a.queueMu.Lock()
	if err := a.queue.Enqueue(fn, initialState); err != nil {
		a.queueMu.Unlock()
		return err
	}
	a.jobList.Set(initialState.GetID(), initialState)
	a.jobOrder = append(a.jobOrder, initialState.GetID())
	a.queueMu.Unlock()
	select {
	case a.wakeUp <- struct{}{}:
	default:
	}
	log.Info().Str("jobId", initialState.GetID()).Msg("job enqueued")
	return nil
}

func (a *Actions) GetJob(jobID string) (GeneralJobInfo, bool) {
	return a.jobList.GetWithTest(jobID)
}

// ListJobs returns all the jobs in the order they were enqueued
func (a *Actions) ListJobs() []GeneralJobInfo {
	a.queueMu.Lock()
	ids := make([]string, len(a.jobOrder))
	copy(ids, a.jobOrder)
	a.queueMu.Unlock()
	ans := make([]GeneralJobInfo, 0, len(ids))
	for _, id := range ids {
		if job, ok := a.jobList.GetWithTest(id); ok {
			ans = append(ans, job)
		}
	}
	return ans
}

func (a *Actions) queuePosition(jobID string) int {
	a.queueMu.Lock()
	defer a.queueMu.Unlock()
	return a.queue.Position(jobID)
}

func (a *Actions) printer(ctx *gin.Context) *message.Printer {
	lang := ctx.Query("lang")
	if lang == "" {
		lang = a.defaultLang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// JobList godoc
// @Summary      List all the import jobs
// @Produce      json
// @Param        unfinishedOnly query int false "Show only unfinished jobs (1)"
// @Success      200 {array} JobInfoCompact
// @Router       /jobs [get]
func (a *Actions) JobList(ctx *gin.Context) {
	unfinishedOnly := ctx.Query("unfinishedOnly") == "1"
	ans := make(JobInfoListCompact, 0, 20)
	for _, job := range a.ListJobs() {
		if unfinishedOnly && job.IsFinished() {
			continue
		}
		ans = append(ans, job.CompactVersion())
	}
	sort.Sort(ans)
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// JobInfo godoc
// @Summary      Get detailed information about a job
// @Produce      json
// @Param        jobId path string true "Job ID"
// @Param        lang query string false "Language of the description"
// @Success      200 {object} jobInfoResponse
// @Failure      404 {object} uniresp.ActionError
// @Router       /jobs/{jobId} [get]
func (a *Actions) JobInfo(ctx *gin.Context) {
	job, ok := a.GetJob(ctx.Param("jobId"))
	if !ok {
		uniresp.RespondWithErrorJSON(ctx, errors.New("job not found"), http.StatusNotFound)
		return
	}
	printer := a.printer(ctx)
	uniresp.WriteJSONResponse(
		ctx.Writer,
		jobInfoResponse{
			Info:          job.FullInfo(),
			Description:   extractJobDescription(printer, job),
			Status:        localizedStatus(printer, job),
			QueuePosition: a.queuePosition(job.GetID()),
		},
	)
}

func NewActions(conf *Conf, defaultLang string, ctx context.Context) *Actions {
	ans := &Actions{
		conf:        conf,
		ctx:         ctx,
		jobList:     collections.NewConcurrentMap[string, GeneralJobInfo](),
		jobOrder:    make([]string, 0, 50),
		queue:       NewJobQueue(conf.MaxQueueSize),
		wakeUp:      make(chan struct{}, 1),
		defaultLang: defaultLang,
	}
	go ans.runWorker()
	return ans
}
