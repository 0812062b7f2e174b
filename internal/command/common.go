// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/staranto/pxqgo/internal/manifest"
	"github.com/staranto/pxqgo/internal/meta"
	"github.com/staranto/pxqgo/internal/output"
	"github.com/staranto/pxqgo/internal/rows"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ManifestPath returns the positional manifest argument.
func ManifestPath(cmd *cli.Command) (string, error) {
	path := cmd.Args().First()
	if path == "" {
		return "", errors.New("no package.xml path specified")
	}
	return path, nil
}

// ComponentDataset flattens the manifest into the dataset the output layer
// consumes. The Parent column exists only while splitting is active.
func ComponentDataset(pkg manifest.Package, split bool) output.Dataset {
	rs := rows.Flatten(pkg, split)
	return output.Dataset{
		Headers: rows.Headers(split),
		Records: rows.Records(rs, split),
	}
}
