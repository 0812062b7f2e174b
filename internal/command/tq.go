// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/pxqgo/internal/manifest"
	"github.com/staranto/pxqgo/internal/meta"
	"github.com/staranto/pxqgo/internal/output"
)

// TqCommandAction is the action handler for the "tq" subcommand. It renders
// one summary row per type group with its member count, skipping the
// per-member expansion that cq performs.
func TqCommandAction(ctx context.Context, cmd *cli.Command) error {
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
	log.Debugf("manifest api version: %s", pkg.Version)

	return output.Spit(TypeDataset(pkg), cmd, os.Stdout)
}

// TypeDataset summarizes the manifest as one record per type group.
func TypeDataset(pkg manifest.Package) output.Dataset {
	records := make([][]string, 0, len(pkg.Types))
	for _, tg := range pkg.Types {
		records = append(records, []string{
			tg.Name,
			humanize.Comma(int64(len(tg.Members))),
		})
	}
	return output.Dataset{
		Headers: []string{"Type", "Members"},
		Records: records,
	}
}

// TqCommandBuilder constructs the cli.Command definition for the "tq"
// command, wiring flags, metadata, and the action/validator handlers.
func TqCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "tq",
		Usage:     "type summary query",
		UsageText: `pxq tq <package.xml> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: NewGlobalFlags("tq"),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: TqCommandAction,
	}
}
