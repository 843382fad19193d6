// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

type drainScheduler struct {
	requests chan struct{}
}

// NewDrainScheduler returns a scheduler with a single pending slot.
// Requests made while one is already queued are merged into it.
func NewDrainScheduler() DrainScheduler {
	return &drainScheduler{requests: make(chan struct{}, 1)}
}

func (s *drainScheduler) Schedule() bool {
	select {
	case s.requests <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *drainScheduler) Requests() <-chan struct{} {
	return s.requests
}
