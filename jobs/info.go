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
	"golang.org/x/text/message"
)

func extractJobDescription(printer *message.Printer, info GeneralJobInfo) string {
	switch info.GetType() {
	case JobTypeResourceImport:
		return printer.Sprintf("Import of a lexicon resource")
	case JobTypeVerticalImport:
		return printer.Sprintf("Import of lexemes from a vertical corpus")
	case JobTypeSnapshotSave:
		return printer.Sprintf("Saving of a lexicon snapshot")
	default:
		return printer.Sprintf("Unknown job")
	}
}

func localizedStatus(printer *message.Printer, info GeneralJobInfo) string {
	if !info.IsFinished() {
		return printer.Sprintf("Job is running or waiting in the queue")
	}
	if info.GetError() == nil {
		return printer.Sprintf("Job finished without errors")
	}
	return printer.Sprintf("Job finished with error: %s", info.GetError())
}
