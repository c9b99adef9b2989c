// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for vmlaunch. It handles
// flag parsing, configuration layering, operator output, and error handling.
package cmd
