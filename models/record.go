// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Record is a row of a synchronized clinic table. Both backends store every
// table with the same shape: id, JSON payload, update time and author.
type Record struct {
	Table     string          `json:"table"`
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
	UpdatedBy string          `json:"updated_by,omitempty"`
}

// Mutation is a single write requested by a data-access call site.
type Mutation struct {
	Table     string          `json:"table"`
	RecordID  string          `json:"record_id"`
	Operation Operation       `json:"operation"`
	Payload   json.RawMessage `json:"payload,omitempty"`

	// Actor is the user the write is attributed to.
	Actor string `json:"-"`
}

// Validate checks the mutation shape. The table name is checked by the
// backends against their configured set.
func (m Mutation) Validate() error {
	if err := m.Operation.Validate(); err != nil {
		return err
	}
	if m.RecordID == "" {
		return errors.New("empty record id")
	}
	if m.Operation != OperationDelete && !isJSONObject(m.Payload) {
		return errors.New("payload must be a JSON object")
	}
	return nil
}

func isJSONObject(payload json.RawMessage) bool {
	var obj map[string]any
	return len(payload) > 0 && json.Unmarshal(payload, &obj) == nil && obj != nil
}

// PayloadHash returns a hash of the payload that does not depend on key
// order or whitespace, so payloads read back from different backends can be
// compared.
func PayloadHash(payload json.RawMessage) (string, error) {
	if len(payload) == 0 {
		return "", nil
	}

	var v any
	if err := json.Unmarshal(payload, &v); err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}

	canonical, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// SamePayload reports whether two payloads are semantically equal JSON.
func SamePayload(a, b json.RawMessage) bool {
	ha, errA := PayloadHash(a)
	hb, errB := PayloadHash(b)
	if errA != nil || errB != nil {
		return false
	}
	return ha == hb
}
