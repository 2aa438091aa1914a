// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantName(t *testing.T) {
	testCases := []struct {
		path          string
		configuration string
		expected      string
	}{
		{"main.cc", "", "main.cc.default.i"},
		{"src/main.cc", "WIN32", "main.cc.WIN32.i"},
		{"include/config.h", "A;B", "config.h.A_B.i"},
		{"x.cpp", "A&&B", "x.cpp.A__B.i"},
	}

	for _, tc := range testCases {
		result := variantName(tc.path, tc.configuration)
		assert.Equal(t, tc.expected, result,
			"path: %q, configuration: %q", tc.path, tc.configuration)
	}
}

func TestPatternListAccumulates(t *testing.T) {
	patterns := defaultPatterns

	// The first explicit pattern replaces the defaults, later ones add up.
	require.NoError(t, patterns.Set("**/*.cc"))
	require.NoError(t, patterns.Set("**/*.h"))
	assert.Equal(t, []string{"**/*.cc", "**/*.h"}, patterns.values)

	// The package-level defaults stay untouched.
	assert.True(t, defaultPatterns.isDefault)
	assert.NotEmpty(t, defaultPatterns.values)
}

func TestGlobSources(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.cc", "b.h", "notes.txt", "sub/d.cpp"} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0o644))
	}

	files, err := globSources(root, defaultPatterns.values)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(root, "a.cc"),
		filepath.Join(root, "b.h"),
		filepath.Join(root, "sub", "d.cpp"),
	}
	assert.Equal(t, expected, files)
}

func TestCollectSourcesExplicitFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "custom.inc")
	require.NoError(t, os.WriteFile(path, []byte("#ifdef A\n#endif\n"), 0o644))

	// Files named directly bypass the pattern filter.
	files, cleanup, err := collectSources([]string{path}, defaultPatterns.values)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, []string{path}, files)
}

func TestCollectSourcesArchive(t *testing.T) {
	root := t.TempDir()
	archivePath := filepath.Join(root, "src.zip")

	f, err := os.Create(archivePath)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range map[string]string{
		"src/x.cc":     "#ifdef A\nint a;\n#endif\n",
		"src/notes.md": "not a source\n",
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	files, cleanup, err := collectSources([]string{archivePath}, defaultPatterns.values)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "x.cc", filepath.Base(files[0]))

	// cleanup removes the extraction directory.
	cleanup()
	_, err = os.Stat(files[0])
	assert.True(t, os.IsNotExist(err))
}

func TestScanFileWritesVariants(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.cc")
	require.NoError(t, os.WriteFile(src, []byte("#ifdef A\nx;\n#endif\n"), 0o644))
	outDir := filepath.Join(root, "out")

	configurations, err := scanFile(src, outDir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "A"}, configurations)

	baseline, err := os.ReadFile(filepath.Join(outDir, "a.cc.default.i"))
	require.NoError(t, err)
	assert.Equal(t, "\n\n\n", string(baseline))

	variant, err := os.ReadFile(filepath.Join(outDir, "a.cc.A.i"))
	require.NoError(t, err)
	assert.Equal(t, "\nx;\n\n", string(variant))
}

func TestScanFileListOnly(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.cc")
	require.NoError(t, os.WriteFile(src, []byte("#ifndef G\n#endif\n"), 0o644))

	configurations, err := scanFile(src, filepath.Join(root, "out"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "G"}, configurations)

	// List mode writes nothing.
	_, err = os.Stat(filepath.Join(root, "out"))
	assert.True(t, os.IsNotExist(err))
}
