// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the check-in client command line.
//
// Each cobra command is a thin call into the client services: cached reads,
// queued mutations, sync and download. The watch command runs the
// connectivity prober and the sync job in the background while the live
// status view is open.
package client
