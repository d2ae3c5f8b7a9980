// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means Handlers carried neither transport.
	errNoServersAreCreated = errors.New("profile server has no transport to run")
	// errListening wraps a failed net.Listen on the gRPC address.
	errListening = errors.New("grpc listener")
)
