// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It wires the terminal UI to either a local item store or a running web
// server and owns the process lifecycle.
package client
