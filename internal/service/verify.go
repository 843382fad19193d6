// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/models"
)

// writeCloud upserts or deletes the record on the cloud and reads it back.
func writeCloud(ctx context.Context, cloud adapter.CloudBackend, record models.Record, remove bool) error {
	if remove {
		if err := cloud.Delete(ctx, record.Table, record.ID); err != nil {
			return err
		}
		return verifyCloudAbsent(ctx, cloud, record.Table, record.ID)
	}

	if err := cloud.Upsert(ctx, record); err != nil {
		return err
	}
	return verifyCloudRecord(ctx, cloud, record)
}

func verifyCloudRecord(ctx context.Context, cloud adapter.CloudBackend, want models.Record) error {
	got, err := cloud.Get(ctx, want.Table, want.ID)
	if errors.Is(err, adapter.ErrCloudNotFound) {
		return fmt.Errorf("%w: %s/%s missing after upsert", ErrPostConditionFailed, want.Table, want.ID)
	}
	if err != nil {
		return err
	}
	if !models.SamePayload(got.Payload, want.Payload) {
		return fmt.Errorf("%w: %s/%s payload differs after upsert", ErrPostConditionFailed, want.Table, want.ID)
	}
	return nil
}

func verifyCloudAbsent(ctx context.Context, cloud adapter.CloudBackend, table, id string) error {
	_, err := cloud.Get(ctx, table, id)
	switch {
	case errors.Is(err, adapter.ErrCloudNotFound):
		return nil
	case err != nil:
		return err
	default:
		return fmt.Errorf("%w: %s/%s still present after delete", ErrPostConditionFailed, table, id)
	}
}

// isTransient reports whether a cloud error is worth retrying later.
func isTransient(err error) bool {
	return errors.Is(err, adapter.ErrCloudUnavailable) ||
		errors.Is(err, adapter.ErrCloudDisabled) ||
		errors.Is(err, context.DeadlineExceeded)
}
