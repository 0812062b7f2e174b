// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/apex/log"

	"github.com/staranto/pxqgo/internal/command"
	"github.com/staranto/pxqgo/internal/config"
	mylog "github.com/staranto/pxqgo/internal/log"
	"github.com/staranto/pxqgo/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	} else {
		args = expandArgSets(args)
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		// A consumer that stopped reading (say, a paginator that quit) is a
		// normal way for a run to end, not something to report.
		if errors.Is(err, syscall.EPIPE) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// expandArgSets replaces a @set argument with the args stored under the
// config key "<cmd>.<set>". With no @set present, "<cmd>.defaults" applies
// when the config defines it. Help requests skip expansion entirely.
func expandArgSets(args []string) []string {
	// args[0] is the executable, args[1] the command. Nothing to expand when
	// the command slot holds a flag instead.
	if strings.HasPrefix(args[1], "-") {
		return args
	}

	for _, a := range args {
		if a == "--help" || a == "-h" {
			return args
		}
	}

	// See if there is a @set specified. If so, that becomes the insertion
	// point and the @set entry is removed from args.
	idx := 2
	set := "defaults"
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			idx += i
			args = append(args[:idx], args[idx+1:]...)
			break
		}
	}

	setArgs, _ := config.GetStringSlice(args[1] + "." + set)
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		args = append(args[:idx], append(parts, args[idx:]...)...)
		idx += len(parts)
	}

	log.Debugf("idx=%d, set=%s, args=%v", idx, set, args)
	return args
}
