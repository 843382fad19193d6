// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders daemon responses for the syncctl terminal and asks
// the operator to confirm destructive actions.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNotConfirmed is returned by callers when the operator answered no.
var ErrNotConfirmed = errors.New("not confirmed")

// Confirm shows prompt and waits for a yes or no answer read from in.
// Anything other than an explicit yes counts as no.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, prompt string) (bool, error) {
	program := tea.NewProgram(
		newConfirmModel(prompt),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil {
		return false, err
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.confirmed, nil
}
