// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    Package
		wantErr bool
	}{
		{
			name: "typical manifest",
			doc: `<?xml version="1.0" encoding="UTF-8"?>
<Package xmlns="http://soap.sforce.com/2006/04/metadata">
    <types>
        <members>Account.Active__c</members>
        <members>Contact.Level__c</members>
        <name>CustomField</name>
    </types>
    <types>
        <members>MyClass</members>
        <name>ApexClass</name>
    </types>
    <version>59.0</version>
</Package>`,
			want: Package{
				Types: []TypeGroup{
					{Members: []string{"Account.Active__c", "Contact.Level__c"}, Name: "CustomField"},
					{Members: []string{"MyClass"}, Name: "ApexClass"},
				},
				Version: "59.0",
			},
		},
		{
			name: "empty package",
			doc:  `<Package xmlns="http://soap.sforce.com/2006/04/metadata"></Package>`,
			want: Package{},
		},
		{
			name: "group with no members",
			doc: `<Package>
    <types>
        <name>CustomObject</name>
    </types>
</Package>`,
			want: Package{
				Types: []TypeGroup{{Name: "CustomObject"}},
			},
		},
		{
			name: "document order preserved",
			doc: `<Package>
    <types><members>Zed</members><name>CustomObject</name></types>
    <types><members>Alpha</members><name>ApexClass</name></types>
</Package>`,
			want: Package{
				Types: []TypeGroup{
					{Members: []string{"Zed"}, Name: "CustomObject"},
					{Members: []string{"Alpha"}, Name: "ApexClass"},
				},
			},
		},
		{
			name:    "malformed xml",
			doc:     `<Package><types>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.doc))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Types, got.Types)
			assert.Equal(t, tt.want.Version, got.Version)
		})
	}
}

func TestLoad(t *testing.T) {
	pkg, err := Load(filepath.Join("testdata", "package.xml"))
	require.NoError(t, err)
	require.Len(t, pkg.Types, 3)
	assert.Equal(t, "CustomField", pkg.Types[0].Name)
	assert.Equal(t, "Layout", pkg.Types[1].Name)
	assert.Equal(t, "ApexClass", pkg.Types[2].Name)
	assert.Equal(t, "60.0", pkg.Version)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.xml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nope.xml")
}
