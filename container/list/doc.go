// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides generic linked lists: a doubly linked list
// bounded by sentinel nodes, with O(1) removal by handle and a Cursor
// for bidirectional navigation, a singly linked list with indexed
// operations, and helpers for working with bare chains of nodes.
package list
