// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	errDaemonRequest = errors.New("daemon request failed")
	errAborted       = errors.New("aborted by operator")
)
