// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the profile editor process: it probes the server once
// and then hands the terminal to the UI until the user quits or the process
// is signalled.
package client
