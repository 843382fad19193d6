// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/internal/mock"
	"github.com/MKhiriev/go-clinic-sync/models"
)

func TestProber_ProbeBothBackends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cloud := mock.NewMockCloudBackend(ctrl)
	local := mock.NewMockLocalBackend(ctrl)
	endpoint := "clinic.db"

	cloud.EXPECT().Ping(gomock.Any()).Return(adapter.ErrCloudUnavailable)
	local.EXPECT().Ping(gomock.Any()).Return(nil)
	local.EXPECT().Endpoint().Return(&endpoint)

	p := NewProber(cloud, local, desktop, time.Second)
	_, ok := p.Latest()
	require.False(t, ok)

	got := p.Probe(context.Background())

	assert.False(t, got.CloudAvailable)
	assert.True(t, got.LocalAvailable)
	assert.Equal(t, models.ModeLocal, got.Mode)
	require.NotNil(t, got.LocalEndpoint)
	assert.Equal(t, "clinic.db", *got.LocalEndpoint)
	assert.False(t, got.CheckedAt.IsZero())

	latest, ok := p.Latest()
	require.True(t, ok)
	assert.Equal(t, got, latest)
}

func TestProber_WebRuntimeSkipsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cloud := mock.NewMockCloudBackend(ctrl)
	local := mock.NewMockLocalBackend(ctrl)
	cloud.EXPECT().Ping(gomock.Any()).Return(nil)

	got := NewProber(cloud, local, web, time.Second).Probe(context.Background())

	assert.True(t, got.CloudAvailable)
	assert.False(t, got.LocalAvailable)
	assert.Nil(t, got.LocalEndpoint)
	assert.Equal(t, models.ModeCloud, got.Mode)
}

func TestProber_PingBoundedByTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cloud := mock.NewMockCloudBackend(ctrl)
	local := mock.NewMockLocalBackend(ctrl)

	cloud.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	local.EXPECT().Ping(gomock.Any()).Return(nil)
	local.EXPECT().Endpoint().Return(nil)

	start := time.Now()
	got := NewProber(cloud, local, desktop, 20*time.Millisecond).Probe(context.Background())

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.False(t, got.CloudAvailable)
	assert.True(t, got.LocalAvailable)
}

func TestProber_PublishesToSubscribersInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cloud := mock.NewMockCloudBackend(ctrl)
	local := mock.NewMockLocalBackend(ctrl)
	cloud.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)
	local.EXPECT().Ping(gomock.Any()).Return(errors.New("disk gone")).Times(2)
	local.EXPECT().Endpoint().Return(nil).Times(2)

	p := NewProber(cloud, local, desktop, time.Second)
	var calls []string
	p.Subscribe(func(context.Context, models.ConnectionStatus) { calls = append(calls, "modes") })
	p.Subscribe(func(context.Context, models.ConnectionStatus) { calls = append(calls, "hub") })

	p.Probe(context.Background())
	p.Probe(context.Background())

	assert.Equal(t, []string{"modes", "hub", "modes", "hub"}, calls)
}

func TestProber_CancelledProbeIsNotPublished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cloud := mock.NewMockCloudBackend(ctrl)
	local := mock.NewMockLocalBackend(ctrl)
	cloud.EXPECT().Ping(gomock.Any()).Return(context.Canceled)
	local.EXPECT().Ping(gomock.Any()).Return(context.Canceled)
	local.EXPECT().Endpoint().Return(nil)

	p := NewProber(cloud, local, desktop, time.Second)
	p.Subscribe(func(context.Context, models.ConnectionStatus) { t.Error("listener must not run") })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Probe(ctx)

	_, ok := p.Latest()
	assert.False(t, ok)
}

func TestProber_DrivesModeSelector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cloud := mock.NewMockCloudBackend(ctrl)
	local := mock.NewMockLocalBackend(ctrl)
	gomock.InOrder(
		cloud.EXPECT().Ping(gomock.Any()).Return(adapter.ErrCloudUnavailable),
		cloud.EXPECT().Ping(gomock.Any()).Return(nil),
	)
	local.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)
	local.EXPECT().Endpoint().Return(nil).Times(2)

	scheduler := NewDrainScheduler()
	modes := NewModeSelector(desktop, scheduler)
	p := NewProber(cloud, local, desktop, time.Second)
	p.Subscribe(modes.OnStatus)

	p.Probe(context.Background())
	assert.Equal(t, models.ModeLocal, modes.Mode())

	p.Probe(context.Background())
	assert.Equal(t, models.ModeCloud, modes.Mode())
	assert.Len(t, scheduler.Requests(), 1)
}

func TestProber_SlowerOlderProbeIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cloud := mock.NewMockCloudBackend(ctrl)
	local := mock.NewMockLocalBackend(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	cloud.EXPECT().Ping(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(started)
		<-release
		return adapter.ErrCloudUnavailable
	})
	cloud.EXPECT().Ping(gomock.Any()).Return(nil)

	p := NewProber(cloud, local, web, time.Second).(*prober)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	ticks := 0
	p.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		ticks++
		return base.Add(time.Duration(ticks) * time.Second)
	}

	var published []models.ConnectionStatus
	p.Subscribe(func(_ context.Context, status models.ConnectionStatus) {
		published = append(published, status)
	})

	slow := make(chan models.ConnectionStatus)
	go func() { slow <- p.Probe(context.Background()) }()
	<-started

	fresh := p.Probe(context.Background())
	require.True(t, fresh.CloudAvailable)

	close(release)
	stale := <-slow

	assert.Equal(t, fresh, stale)
	require.Len(t, published, 1)
	assert.True(t, published[0].CloudAvailable)
	latest, ok := p.Latest()
	require.True(t, ok)
	assert.True(t, latest.CloudAvailable)
	assert.Equal(t, base.Add(2*time.Second), latest.CheckedAt)
}
