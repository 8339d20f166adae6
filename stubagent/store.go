/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package stubagent

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/nuts-foundation/vpsubmit/pe"
	"go.etcd.io/bbolt"
)

// ErrSubmissionNotFound is returned when a submission isn't in the store.
var ErrSubmissionNotFound = errors.New("submission not found")

const boltDBFileMode = 0600

var submissionsBucket = []byte("submissions")

// Record is a stored, accepted submission.
type Record struct {
	ReceivedAt time.Time                 `json:"receivedAt"`
	VPToken    string                    `json:"vp_token"`
	Submission pe.PresentationSubmission `json:"presentation_submission"`
}

// submissionStore stores accepted submissions by their ID. A later submission with the same ID replaces the earlier one.
type submissionStore interface {
	Put(record Record) error
	Get(id string) (*Record, error)
	Close() error
}

// openStore opens a BBolt backed store if file is set, or an in-memory store otherwise.
func openStore(file string) (submissionStore, error) {
	if file == "" {
		return &memoryStore{records: map[string]Record{}}, nil
	}
	db, err := bbolt.Open(file, boltDBFileMode, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(submissionsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltStore{db: db}, nil
}

type boltStore struct {
	db *bbolt.DB
}

func (s *boltStore) Put(record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(submissionsBucket).Put([]byte(record.Submission.Id), data)
	})
}

func (s *boltStore) Get(id string) (*Record, error) {
	var result *Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(submissionsBucket).Get([]byte(id))
		if data == nil {
			return ErrSubmissionNotFound
		}
		result = &Record{}
		return json.Unmarshal(data, result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}

type memoryStore struct {
	records map[string]Record
	mux     sync.RWMutex
}

func (s *memoryStore) Put(record Record) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.records[record.Submission.Id] = record
	return nil
}

func (s *memoryStore) Get(id string) (*Record, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, ErrSubmissionNotFound
	}
	return &record, nil
}

func (s *memoryStore) Close() error {
	return nil
}
