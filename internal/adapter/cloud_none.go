// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-clinic-sync/models"
)

// noCloud is used when no cloud backend is configured. The prober sees it
// as permanently unreachable, so the daemon runs local-only.
type noCloud struct{}

// NewNoCloud returns the disabled cloud backend.
func NewNoCloud() CloudBackend { return noCloud{} }

func (noCloud) Name() string                                 { return "none" }
func (noCloud) Ping(context.Context) error                   { return ErrCloudDisabled }
func (noCloud) Upsert(context.Context, models.Record) error  { return ErrCloudDisabled }
func (noCloud) Delete(context.Context, string, string) error { return ErrCloudDisabled }
func (noCloud) Close() error                                 { return nil }

func (noCloud) Get(context.Context, string, string) (models.Record, error) {
	return models.Record{}, ErrCloudDisabled
}
