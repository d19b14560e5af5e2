// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crdt implements the replicated data types that keep per-device
// state convergent without a central authority.
//
// The only primitive is [Map], an observed-remove map with last-writer-wins
// value resolution. Every mutation returns a new value; replicas exchange
// whole states and reconcile with [Map.Merge], which is commutative,
// associative and idempotent, so the network may deliver states in any
// order, any number of times.
package crdt
