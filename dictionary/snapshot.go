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

package dictionary

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/google/uuid"
	"github.com/grigoriliev/lingua-bg/grammar"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

const (
	SnapshotFormatVersion = 1
)

var snapshotMagic = []byte("LXBGSNAP")

type SnapshotHeader struct {
	ID         string    `json:"id"`
	Version    int       `json:"version"`
	Created    time.Time `json:"created"`
	NumEntries int       `json:"numEntries"`
}

type snapshotLabelBucket struct {
	Label grammar.Label
	IDs   []int
}

type snapshotData struct {
	NextID     int
	Entries    []WordEntry
	WordIndex  map[string][]int
	LabelIndex []snapshotLabelBucket
}

func entryIDs(entries []*WordEntry) []int {
	ans := make([]int, len(entries))
	for i, e := range entries {
		ans[i] = e.ID
	}
	return ans
}

func (s *Store) exportSnapshotData() snapshotData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data := snapshotData{
		NextID:     s.nextID,
		Entries:    make([]WordEntry, 0, s.byID.Len()),
		WordIndex:  make(map[string][]int, len(s.byWord)),
		LabelIndex: make([]snapshotLabelBucket, 0, s.byLabel.Len()),
	}
	s.byID.Ascend(func(e *WordEntry) bool {
		data.Entries = append(data.Entries, *e)
		return true
	})
	for word, entries := range s.byWord {
		data.WordIndex[word] = entryIDs(entries)
	}
	s.byLabel.Ascend(func(b *labelBucket) bool {
		data.LabelIndex = append(
			data.LabelIndex,
			snapshotLabelBucket{Label: b.label, IDs: entryIDs(b.entries)},
		)
		return true
	})
	return data
}

// WriteSnapshot serializes the whole store including all the indexes
// and the state of the ID allocator. The data are gob-encoded, protected
// by a BLAKE3 checksum and compressed using xz.
func (s *Store) WriteSnapshot(w io.Writer) (SnapshotHeader, error) {
	data := s.exportSnapshotData()
	snapshotID, err := uuid.NewUUID()
	if err != nil {
		return SnapshotHeader{}, fmt.Errorf("failed to write snapshot: %w", err)
	}
	header := SnapshotHeader{
		ID:         snapshotID.String(),
		Version:    SnapshotFormatVersion,
		Created:    time.Now(),
		NumEntries: len(data.Entries),
	}
	var payload bytes.Buffer
	enc := gob.NewEncoder(&payload)
	if err := enc.Encode(header); err != nil {
		return header, fmt.Errorf("failed to encode snapshot header: %w", err)
	}
	if err := enc.Encode(data); err != nil {
		return header, fmt.Errorf("failed to encode snapshot data: %w", err)
	}
	checksum := blake3.Sum256(payload.Bytes())

	xw, err := xz.NewWriter(w)
	if err != nil {
		return header, fmt.Errorf("failed to write snapshot: %w", err)
	}
	for _, chunk := range [][]byte{snapshotMagic, checksum[:], payload.Bytes()} {
		if _, err := xw.Write(chunk); err != nil {
			return header, fmt.Errorf("failed to write snapshot: %w", err)
		}
	}
	if err := xw.Close(); err != nil {
		return header, fmt.Errorf("failed to write snapshot: %w", err)
	}
	return header, nil
}

// ReadSnapshot restores a store written by WriteSnapshot. All the
// indexes are cross-checked and any disagreement among them is
// reported as ErrCorruptIndex.
func ReadSnapshot(r io.Reader) (*Store, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(xr, magic); err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if !bytes.Equal(magic, snapshotMagic) {
		return nil, fmt.Errorf("failed to read snapshot: %w: not a snapshot file", ErrResourceFormat)
	}
	var checksum [32]byte
	if _, err := io.ReadFull(xr, checksum[:]); err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	payload, err := io.ReadAll(xr)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if blake3.Sum256(payload) != checksum {
		return nil, fmt.Errorf("failed to read snapshot: %w: checksum mismatch", ErrCorruptIndex)
	}
	dec := gob.NewDecoder(bytes.NewReader(payload))
	var header SnapshotHeader
	if err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot header: %w", err)
	}
	if header.Version != SnapshotFormatVersion {
		return nil, fmt.Errorf(
			"failed to read snapshot: %w: unsupported version %d", ErrResourceFormat, header.Version)
	}
	var data snapshotData
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot data: %w", err)
	}
	store, err := restoreStore(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", header.ID, err)
	}
	store.origin = &header
	return store, nil
}

func restoreStore(data snapshotData) (*Store, error) {
	store := NewStore()
	store.nextID = data.NextID
	byID := make(map[int]*WordEntry, len(data.Entries))
	for i := range data.Entries {
		e := &data.Entries[i]
		if e.ID >= store.nextID {
			return nil, fmt.Errorf("%w: entry ID %d exceeds the allocator state", ErrCorruptIndex, e.ID)
		}
		if _, ok := byID[e.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate entry ID %d", ErrCorruptIndex, e.ID)
		}
		byID[e.ID] = e
		store.byID.ReplaceOrInsert(e)
	}
	var numWordRefs int
	for word, ids := range data.WordIndex {
		entries, err := resolveIDs(byID, ids, func(e *WordEntry) bool { return e.Word == word })
		if err != nil {
			return nil, fmt.Errorf("word index of %s: %w", word, err)
		}
		store.byWord[word] = entries
		numWordRefs += len(entries)
	}
	var numLabelRefs int
	for _, b := range data.LabelIndex {
		entries, err := resolveIDs(byID, b.IDs, func(e *WordEntry) bool { return e.Label == b.Label })
		if err != nil {
			return nil, fmt.Errorf("label index of %d: %w", uint32(b.Label), err)
		}
		store.byLabel.ReplaceOrInsert(&labelBucket{label: b.Label, entries: entries})
		numLabelRefs += len(entries)
	}
	if numWordRefs != len(byID) || numLabelRefs != len(byID) {
		return nil, fmt.Errorf(
			"%w: indexes reference %d (words) and %d (labels) entries, expected %d",
			ErrCorruptIndex, numWordRefs, numLabelRefs, len(byID))
	}
	return store, nil
}

// resolveIDs maps IDs to entries, all of them must exist, be unique,
// ordered and satisfy the test.
func resolveIDs(byID map[int]*WordEntry, ids []int, test func(e *WordEntry) bool) ([]*WordEntry, error) {
	ans := make([]*WordEntry, len(ids))
	for i, id := range ids {
		e, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown entry ID %d", ErrCorruptIndex, id)
		}
		if i > 0 && ans[i-1].ID >= id {
			return nil, fmt.Errorf("%w: entries not ordered by ID", ErrCorruptIndex)
		}
		if !test(e) {
			return nil, fmt.Errorf("%w: entry %s misplaced", ErrCorruptIndex, e)
		}
		ans[i] = e
	}
	return ans, nil
}

// Origin returns the header of the snapshot the store
// was loaded from (if any).
func (s *Store) Origin() (SnapshotHeader, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.origin == nil {
		return SnapshotHeader{}, false
	}
	return *s.origin, true
}

func WriteSnapshotFile(s *Store, path string) (SnapshotHeader, error) {
	f, err := os.Create(path)
	if err != nil {
		return SnapshotHeader{}, fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()
	return s.WriteSnapshot(f)
}

func ReadSnapshotFile(path string) (*Store, error) {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file %s: %w", path, err)
	}
	if !isFile {
		return nil, fmt.Errorf("snapshot file %s not found", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}
