// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package rows turns the nested type/member manifest model into the flat
// row set the output layer renders.
package rows
