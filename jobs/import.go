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

const (
	JobTypeResourceImport = "resource-import"
	JobTypeVerticalImport = "vertical-import"
	JobTypeSnapshotSave   = "snapshot-save"
)

// ImportJobResult summarizes an import into the lexicon.
// Stats are specific to the job type.
type ImportJobResult struct {
	Stats      any    `json:"stats"`
	StoreSize  int    `json:"storeSize"`
	SnapshotID string `json:"snapshotId,omitempty"`
}

// ImportJobInfo collects information about a data import job
type ImportJobInfo struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Source   string           `json:"source"`
	Start    JSONTime         `json:"start"`
	Update   JSONTime         `json:"update"`
	Finished bool             `json:"finished"`
	Error    error            `json:"error,omitempty"`
	Result   *ImportJobResult `json:"result"`
}

func (j ImportJobInfo) GetID() string {
	return j.ID
}

func (j ImportJobInfo) GetType() string {
	return j.Type
}

func (j ImportJobInfo) GetStartDT() JSONTime {
	return j.Start
}

func (j ImportJobInfo) IsFinished() bool {
	return j.Finished
}

func (j ImportJobInfo) AsFinished() GeneralJobInfo {
	j.Update = CurrentDatetime()
	j.Finished = true
	return j
}

// WithResult returns a finished copy of the job with the result set
func (j ImportJobInfo) WithResult(result ImportJobResult) ImportJobInfo {
	j.Update = CurrentDatetime()
	j.Finished = true
	j.Result = &result
	return j
}

func (j ImportJobInfo) CompactVersion() JobInfoCompact {
	return JobInfoCompact{
		ID:       j.ID,
		Type:     j.Type,
		Source:   j.Source,
		Start:    j.Start,
		Update:   j.Update,
		Finished: j.Finished,
		OK:       j.Error == nil && (!j.Finished || j.Result != nil),
	}
}

func (j ImportJobInfo) FullInfo() any {
	return struct {
		ID       string           `json:"id"`
		Type     string           `json:"type"`
		Source   string           `json:"source"`
		Start    JSONTime         `json:"start"`
		Update   JSONTime         `json:"update"`
		Finished bool             `json:"finished"`
		Error    string           `json:"error,omitempty"`
		OK       bool             `json:"ok"`
		Result   *ImportJobResult `json:"result"`
	}{
		ID:       j.ID,
		Type:     j.Type,
		Source:   j.Source,
		Start:    j.Start,
		Update:   j.Update,
		Finished: j.Finished,
		Error:    ErrorToString(j.Error),
		OK:       j.Error == nil,
		Result:   j.Result,
	}
}

func (j ImportJobInfo) GetError() error {
	return j.Error
}

func (j ImportJobInfo) WithError(err error) GeneralJobInfo {
	j.Update = CurrentDatetime()
	j.Finished = true
	j.Error = err
	return j
}
