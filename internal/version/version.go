// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the release identifier printed by --version. Overridden at
// build time via -ldflags "-X ...internal/version.Version=vX.Y.Z".
var Version = "v0.4.0-dev"
