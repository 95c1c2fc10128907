// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It tags the session, runs the console UI until the user leaves or a stop
// signal arrives, and releases storage on the way out.
package client
