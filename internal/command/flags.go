// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/pxqgo/internal/config"
	"github.com/staranto/pxqgo/internal/output"
)

// NewGlobalFlags builds the flag set shared by every query command. Flags
// fall back to the config file, namespaced key first (eg. cq.output), then
// the global key, then the hardcoded default. The config source is read at
// build time so a reload (PXQ_CFG, tests) reaches the value-source chains.
func NewGlobalFlags(ns string) (flags []cli.Flag) {
	src := config.Config.Source
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored table output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(src)),
				yaml.YAML("color", altsrc.StringSourcer(src)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(src)),
				yaml.YAML("output", altsrc.StringSourcer(src)),
			),
			Value: "table",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "sort order for results",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"sort", altsrc.StringSourcer(src)),
				yaml.YAML("sort", altsrc.StringSourcer(src)),
			),
			Value: output.SortByType,
			Validator: func(value string) error {
				return FlagValidators(value, SortValidator)
			},
		},
	}

	return
}

// NewSplitFlag constructs the split toggle. It is its own builder because
// tq has no member column to split.
func NewSplitFlag(ns string) *cli.BoolWithInverseFlag {
	src := config.Config.Source
	return &cli.BoolWithInverseFlag{
		Name:  "split",
		Usage: "split Parent.Member style members into separate columns",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"split", altsrc.StringSourcer(src)),
			yaml.YAML("split", altsrc.StringSourcer(src)),
		),
		Value: true,
	}
}
