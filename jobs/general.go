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
	"time"
)

// GeneralJobInfo describes a state of a job at some point
// of its lifecycle. Implementations are expected to be
// immutable values, i.e. each update produces a new value.
type GeneralJobInfo interface {
	GetID() string
	GetType() string
	GetStartDT() JSONTime
	IsFinished() bool
	AsFinished() GeneralJobInfo
	CompactVersion() JobInfoCompact
	FullInfo() any
	GetError() error
	WithError(err error) GeneralJobInfo
}

// JobInfoCompact is a simplified job representation
// for job listings
type JobInfoCompact struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Source   string   `json:"source"`
	Start    JSONTime `json:"start"`
	Update   JSONTime `json:"update"`
	Finished bool     `json:"finished"`
	OK       bool     `json:"ok"`
}

type JobInfoListCompact []JobInfoCompact

func (jil JobInfoListCompact) Len() int {
	return len(jil)
}

func (jil JobInfoListCompact) Less(i, j int) bool {
	return time.Time(jil[i].Start).Before(time.Time(jil[j].Start))
}

func (jil JobInfoListCompact) Swap(i, j int) {
	jil[i], jil[j] = jil[j], jil[i]
}

func ErrorToString(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}
