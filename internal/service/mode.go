// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-clinic-sync/internal/logger"
	"github.com/MKhiriev/go-clinic-sync/models"
)

// SelectMode applies the mode rule: cloud when the cloud answers, local
// when only the local backend answers and the runtime can use it, offline
// otherwise.
func SelectMode(runtime models.RuntimeEnvironment, cloudAvailable, localAvailable bool) models.Mode {
	switch {
	case cloudAvailable:
		return models.ModeCloud
	case localAvailable && runtime.SupportsLocalBackend():
		return models.ModeLocal
	default:
		return models.ModeOffline
	}
}

type modeListener = func(ctx context.Context, from, to models.Mode)

type modeSelector struct {
	runtime   models.RuntimeEnvironment
	scheduler DrainScheduler

	mu        sync.Mutex
	mode      models.Mode
	listeners []modeListener
}

// NewModeSelector starts in offline mode until the first status arrives.
func NewModeSelector(runtime models.RuntimeEnvironment, scheduler DrainScheduler) ModeSelector {
	return &modeSelector{
		runtime:   runtime,
		scheduler: scheduler,
		mode:      models.ModeOffline,
	}
}

func (s *modeSelector) Mode() models.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// OnStatus moves to the mode implied by status. Entering cloud mode from
// any other mode schedules a drain of the ledger.
func (s *modeSelector) OnStatus(ctx context.Context, status models.ConnectionStatus) {
	next := SelectMode(s.runtime, status.CloudAvailable, status.LocalAvailable)

	s.mu.Lock()
	prev := s.mode
	if prev == next {
		s.mu.Unlock()
		return
	}
	s.mode = next
	listeners := append([]modeListener(nil), s.listeners...)
	s.mu.Unlock()

	logger.FromContext(ctx).Info().
		Str("func", "modeSelector.OnStatus").
		Str("from", prev.String()).
		Str("to", next.String()).
		Msg("mode changed")

	if next == models.ModeCloud && s.scheduler != nil {
		s.scheduler.Schedule()
	}

	for _, fn := range listeners {
		fn(ctx, prev, next)
	}
}

func (s *modeSelector) Subscribe(fn modeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
