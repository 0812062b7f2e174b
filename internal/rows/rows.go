// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package rows

import (
	"strings"

	"github.com/staranto/pxqgo/internal/manifest"
)

// ComponentRow is one flattened, display-ready manifest entry. Parent is
// the empty string whenever no split applies or the member has no
// separator; consumers get a concrete empty field, never an absent one.
type ComponentRow struct {
	Type   string
	Parent string
	Member string
}

// splitPolicy maps a metadata type to the separator its members are split
// on. Types not listed are never split. The table is fixed; the only
// runtime control is the global split toggle.
var splitPolicy = map[string]byte{
	"AssignmentRule":       '.',
	"CustomField":          '.',
	"ListView":             '.',
	"RecordType":           '.',
	"SharingCriteriaRule":  '.',
	"SharingOwnerRule":     '.',
	"SharingTerritoryRule": '.',
	"Layout":               '-',
}

// Flatten expands the manifest into one ComponentRow per (group, member)
// pair, preserving group order and member order within each group. With
// split enabled, members of splittable types are decomposed on the FIRST
// occurrence of the type's separator; later occurrences stay in the member
// verbatim. Any member string is accepted, including empty ones.
func Flatten(pkg manifest.Package, split bool) []ComponentRow {
	var out []ComponentRow

	for _, tg := range pkg.Types {
		sep, splittable := splitPolicy[tg.Name]
		for _, m := range tg.Members {
			row := ComponentRow{Type: tg.Name, Member: m}
			if split && splittable {
				if i := strings.IndexByte(m, sep); i >= 0 {
					row.Parent = m[:i]
					row.Member = m[i+1:]
				}
			}
			out = append(out, row)
		}
	}

	return out
}

// Headers returns the column labels for the row set. The Parent column is
// only present while splitting is active.
func Headers(split bool) []string {
	if split {
		return []string{"Type", "Parent", "Member"}
	}
	return []string{"Type", "Member"}
}

// Records projects the row set onto the column layout from Headers.
func Records(rs []ComponentRow, split bool) [][]string {
	records := make([][]string, 0, len(rs))
	for _, r := range rs {
		if split {
			records = append(records, []string{r.Type, r.Parent, r.Member})
		} else {
			records = append(records, []string{r.Type, r.Member})
		}
	}
	return records
}
