// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123")
	assert.Equal(t, AppBuildInfo{Version: "1.0.0", Date: "N/A", Commit: "abc123"}, info)
}

func TestOperation_Validate(t *testing.T) {
	for _, op := range []Operation{OperationInsert, OperationUpdate, OperationDelete} {
		assert.NoError(t, op.Validate())
	}
	assert.Error(t, Operation("UPSERT").Validate())
	assert.Error(t, Operation("").Validate())
}

func TestPayloadHash_IgnoresKeyOrderAndWhitespace(t *testing.T) {
	a, err := PayloadHash(json.RawMessage(`{"b": 2, "a": {"y": 1, "x": [1, 2]}}`))
	require.NoError(t, err)
	b, err := PayloadHash(json.RawMessage(`{"a":{"x":[1,2],"y":1},"b":2}`))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestPayloadHash_Edges(t *testing.T) {
	empty, err := PayloadHash(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = PayloadHash(json.RawMessage(`{"a":`))
	assert.Error(t, err)
}

func TestSamePayload(t *testing.T) {
	assert.True(t, SamePayload(json.RawMessage(`{"a":1,"b":2}`), json.RawMessage(`{"b":2,"a":1}`)))
	assert.False(t, SamePayload(json.RawMessage(`{"a":1}`), json.RawMessage(`{"a":2}`)))
	assert.False(t, SamePayload(json.RawMessage(`{"a":`), json.RawMessage(`{"a":`)))
	assert.True(t, SamePayload(nil, nil))
}

func TestParseRuntimeKind(t *testing.T) {
	kind, err := ParseRuntimeKind("")
	require.NoError(t, err)
	assert.Equal(t, RuntimeDesktop, kind)

	kind, err = ParseRuntimeKind("web")
	require.NoError(t, err)
	assert.Equal(t, RuntimeWeb, kind)

	_, err = ParseRuntimeKind("kiosk")
	assert.Error(t, err)

	assert.True(t, RuntimeEnvironment{Kind: RuntimeDesktop}.SupportsLocalBackend())
	assert.False(t, RuntimeEnvironment{Kind: RuntimeWeb}.SupportsLocalBackend())
}

func TestConnectionStatus_SameReachability(t *testing.T) {
	a := ConnectionStatus{Mode: ModeLocal, LocalAvailable: true}
	b := a
	b.CheckedAt = b.CheckedAt.Add(1)
	assert.True(t, a.SameReachability(b))

	b.CloudAvailable = true
	assert.False(t, a.SameReachability(b))
}

func TestSyncResult_Empty(t *testing.T) {
	assert.True(t, SyncResult{}.Empty())
	assert.False(t, SyncResult{Applied: 1}.Empty())
	assert.False(t, SyncResult{Failed: []SyncFailure{{RecordID: "x"}}}.Empty())
}

func TestMutation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		m       Mutation
		wantErr bool
	}{
		{"insert with object", Mutation{RecordID: "p1", Operation: OperationInsert, Payload: json.RawMessage(`{"a":1}`)}, false},
		{"delete without payload", Mutation{RecordID: "p1", Operation: OperationDelete}, false},
		{"empty id", Mutation{Operation: OperationInsert, Payload: json.RawMessage(`{}`)}, true},
		{"array payload", Mutation{RecordID: "p1", Operation: OperationUpdate, Payload: json.RawMessage(`[1]`)}, true},
		{"null payload", Mutation{RecordID: "p1", Operation: OperationUpdate, Payload: json.RawMessage(`null`)}, true},
		{"unknown operation", Mutation{RecordID: "p1", Operation: "MERGE", Payload: json.RawMessage(`{}`)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
