// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

// Package client implements the client application runtime.
//
// It wires the local store, remote gateway, match and sync services, and the
// background synchronization job into a single process lifecycle.
package client
