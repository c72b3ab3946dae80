// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the scenectl command-line client.
//
// Scene commands go through an [adapter.SceneAdapter], so the same code
// drives a remote server in production and a mock in tests. The token and
// key commands run locally.
package client
