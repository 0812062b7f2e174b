// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package manifest loads Salesforce package.xml documents into an ordered
// in-memory model. It is read-only: nothing here validates member syntax or
// writes the document back.
package manifest
