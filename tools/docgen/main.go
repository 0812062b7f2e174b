// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docgen renders the canonical command docs under docs/commands/*.md
// into man pages (docs/man/share/man1/pxq-<cmd>.1) and TLDR pages
// (docs/tldr/pxq-<cmd>.md). Run it from the repo root after editing
// a command doc.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

type commandDoc struct {
	Name     string // subcommand, from the filename
	Short    string // first paragraph of the Short description section
	Examples []example
	Raw      []byte
}

type example struct {
	Desc string
	Cmd  string
}

func main() {
	var root string
	var force bool
	flag.StringVar(&root, "root", ".", "repo root")
	flag.BoolVar(&force, "force", false, "rewrite outputs even when unchanged")
	flag.Parse()

	docs, err := loadCommandDocs(filepath.Join(root, "docs", "commands"))
	if err != nil {
		fail(err)
	}
	if len(docs) == 0 {
		fail(fmt.Errorf("no command docs under %s", filepath.Join(root, "docs", "commands")))
	}

	manDir := filepath.Join(root, "docs", "man", "share", "man1")
	tldrDir := filepath.Join(root, "docs", "tldr")
	for _, d := range []string{manDir, tldrDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			fail(err)
		}
	}

	for _, doc := range docs {
		man := md2man.Render(doc.Raw)
		if err := emit(filepath.Join(manDir, "pxq-"+doc.Name+".1"), man, force); err != nil {
			fail(fmt.Errorf("man page for %s: %w", doc.Name, err))
		}
		if err := emit(filepath.Join(tldrDir, "pxq-"+doc.Name+".md"), []byte(doc.tldr()), force); err != nil {
			fail(fmt.Errorf("tldr page for %s: %w", doc.Name, err))
		}
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "docgen:", err)
	os.Exit(1)
}

func loadCommandDocs(dir string) ([]commandDoc, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var docs []commandDoc
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		doc := commandDoc{
			Name: strings.TrimSuffix(e.Name(), ".md"),
			Raw:  raw,
		}
		doc.Short = sectionParagraph(string(raw), "Short description")
		doc.Examples = parseExamples(sectionCode(string(raw), "Quick examples"))
		docs = append(docs, doc)
	}
	return docs, nil
}

// sectionParagraph returns the first paragraph following the named
// plain-text section header.
func sectionParagraph(md, section string) string {
	body := sectionBody(md, section)
	var para []string
	for _, ln := range strings.Split(body, "\n") {
		s := strings.TrimSpace(ln)
		if s == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(s, "#") {
			break
		}
		para = append(para, s)
	}
	return strings.Join(para, " ")
}

// sectionCode returns the contents of the first fenced code block
// following the named section header.
func sectionCode(md, section string) string {
	body := sectionBody(md, section)
	open := strings.Index(body, "```")
	if open < 0 {
		return ""
	}
	body = body[open+3:]
	end := strings.Index(body, "```")
	if end < 0 {
		return ""
	}
	return body[:end]
}

func sectionBody(md, section string) string {
	idx := strings.Index(strings.ToLower(md), strings.ToLower(section))
	if idx < 0 {
		return ""
	}
	body := md[idx:]
	if nl := strings.Index(body, "\n"); nl >= 0 {
		body = body[nl+1:]
	}
	return body
}

// parseExamples pairs each "# description" comment line with the
// command line that follows it.
func parseExamples(code string) []example {
	var exs []example
	desc := ""
	for _, ln := range strings.Split(code, "\n") {
		s := strings.TrimSpace(ln)
		switch {
		case s == "":
		case strings.HasPrefix(s, "#"):
			desc = strings.TrimSpace(strings.TrimPrefix(s, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, example{Desc: desc, Cmd: strings.Join(strings.Fields(s), " ")})
			desc = ""
		}
	}
	return exs
}

func (d commandDoc) tldr() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# pxq-%s\n\n", d.Name)
	short := d.Short
	if short == "" {
		short = "pxq " + d.Name
	}
	fmt.Fprintf(&b, "> %s\n", short)
	b.WriteString("> More information: https://github.com/staranto/pxqgo.\n\n")
	if len(d.Examples) == 0 {
		fmt.Fprintf(&b, "- Show help for the command:\n\n`pxq %s --help`\n", d.Name)
		return b.String()
	}
	for i, ex := range d.Examples {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s:\n\n`%s`\n", ex.Desc, ex.Cmd)
	}
	return b.String()
}

func emit(path string, content []byte, force bool) error {
	if !force {
		old, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err == nil && bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(content)) {
			return nil
		}
	}
	return os.WriteFile(path, content, 0o644)
}
