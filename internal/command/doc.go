// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the pxq subcommands, their flags and validators,
// and the glue between the CLI surface and the manifest/rows/output
// internals.
package command
