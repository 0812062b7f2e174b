// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/pxqgo/internal/manifest"
	"github.com/staranto/pxqgo/internal/meta"
	"github.com/staranto/pxqgo/internal/output"
)

// CqCommandAction is the action handler for the "cq" subcommand. It loads
// the manifest, flattens it into component rows (splitting composite
// members per the static policy unless --no-split), and emits results
// according to the common output/sort/filter flags.
func CqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	path, err := ManifestPath(cmd)
	if err != nil {
		return err
	}

	pkg, err := manifest.Load(path)
	if err != nil {
		return err
	}

	ds := ComponentDataset(pkg, cmd.Bool("split"))
	log.Debugf("flattened %d component rows", len(ds.Records))

	return output.Spit(ds, cmd, os.Stdout)
}

// CqCommandBuilder constructs the cli.Command definition for the "cq"
// command, wiring flags, metadata, and the action/validator handlers.
func CqCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "cq",
		Usage:     "component query",
		UsageText: `pxq cq <package.xml> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewSplitFlag("cq"),
		}, NewGlobalFlags("cq")...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: CqCommandAction,
	}
}
