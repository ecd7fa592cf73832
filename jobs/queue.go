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
	"errors"
)

var (
	ErrorEmptyQueue = errors.New("empty queue")
	ErrorQueueFull  = errors.New("job queue is full")
)

// QueuedFunc is a job function. It is expected to send its
// state updates to the provided channel and close the channel
// once it is done.
type QueuedFunc = func(chan<- GeneralJobInfo)

type JobEntry struct {
	job          *QueuedFunc
	initialState GeneralJobInfo
}

// JobQueue is a FIFO of jobs waiting to be run. A zero
// maxSize means no limit. The queue is not thread-safe.
type JobQueue struct {
	entries []JobEntry
	maxSize int
}

func NewJobQueue(maxSize int) *JobQueue {
	return &JobQueue{entries: make([]JobEntry, 0, 10), maxSize: maxSize}
}

func (jq *JobQueue) Size() int {
	return len(jq.entries)
}

func (jq *JobQueue) Enqueue(item *QueuedFunc, initialState GeneralJobInfo) error {
	if jq.maxSize > 0 && len(jq.entries) >= jq.maxSize {
		return ErrorQueueFull
	}
	jq.entries = append(jq.entries, JobEntry{job: item, initialState: initialState})
	return nil
}

func (jq *JobQueue) Dequeue() (*QueuedFunc, GeneralJobInfo, error) {
	if len(jq.entries) == 0 {
		return nil, nil, ErrorEmptyQueue
	}
	ret := jq.entries[0]
	jq.entries[0] = JobEntry{}
	jq.entries = jq.entries[1:]
	return ret.job, ret.initialState, nil
}

func (jq *JobQueue) PeekID() (string, error) {
	if len(jq.entries) == 0 {
		return "", ErrorEmptyQueue
	}
	return jq.entries[0].initialState.GetID(), nil
}

// Position returns a zero based position of the job
// in the queue or -1 if the job is not queued
func (jq *JobQueue) Position(jobID string) int {
	for i, entry := range jq.entries {
		if entry.initialState.GetID() == jobID {
			return i
		}
	}
	return -1
}
