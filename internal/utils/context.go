// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the daemon and the operator CLI:
// typed context keys, JWT parsing, UUIDv7 generation, JSON response writing
// and the resty client factory.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// ActorCtxKey is the key under which the authenticated actor is stored.
var ActorCtxKey = contextKey("actor")

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ActorCtxKey, actor)
}

// ActorFromContext returns the actor stored in ctx. Anonymous requests
// yield "" and ok == false.
func ActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(ActorCtxKey).(string)
	return actor, ok && actor != ""
}
