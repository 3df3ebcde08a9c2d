// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

package client

// Client is the top-level entry point of the client application.
// Run blocks until the process is asked to shut down or a fatal
// startup error occurs.
type Client interface {
	Run() error
}
