// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

// Package config assembles the application configuration from three sources
// merged in priority order: environment variables, command-line flags, and
// an optional JSON file. The merged [StructuredConfig] is narrowed to the
// validated [ClientConfig] view the client runtime consumes.
package config
