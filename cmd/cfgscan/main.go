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
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/EngFlow/cfgscan/cc/preprocessor"
	"github.com/EngFlow/cfgscan/internal/archive"
	"github.com/EngFlow/cfgscan/internal/collections"
)

// Scans C/C++ sources for conditional compilation configurations. Every input
// file is cleaned, macro-expanded and partitioned; the discovered
// configuration keys are either listed or materialized as one preprocessed
// variant file per configuration.
func main() {
	patterns := defaultPatterns
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	list := flag.Bool("list", false, "Print configuration keys instead of writing variant files")
	out := flag.String("out", "", "Output directory for variant files, defaults to the directory of each input")
	jobs := flag.Int("jobs", 4, "Number of files preprocessed in parallel")
	flag.Var(&patterns, "pattern", "Repeated glob patterns selecting sources inside directories and archives")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		log.Fatalf("Program requires at least 1 argument - a source file, directory or archive to scan. Flags need to be defined before arguments")
	}

	files, cleanup, err := collectSources(flag.Args(), patterns.values)
	if err != nil {
		log.Fatalf("Failed to collect sources: %v", err)
	}
	if len(files) == 0 {
		cleanup()
		log.Fatalf("No sources matched %v under %v", patterns.values, flag.Args())
	}

	configurations := make([][]string, len(files))
	var eg errgroup.Group
	eg.SetLimit(*jobs)
	for i, path := range files {
		eg.Go(func() error {
			result, err := scanFile(path, *out, *list)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			configurations[i] = result
			if *verbose {
				log.Printf("%s: %d configurations", path, len(result))
			}
			return nil
		})
	}
	err = eg.Wait()
	cleanup()
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	if *list {
		for i, path := range files {
			for _, configuration := range configurations[i] {
				fmt.Printf("%s\t%q\n", path, configuration)
			}
		}
	}
}

type patternList struct {
	values    []string
	isDefault bool
}

var defaultPatterns = patternList{
	values:    []string{"**/*.{c,cc,cpp,cxx,h,hh,hpp,hxx}"},
	isDefault: true,
}

func (p *patternList) String() string {
	return strings.Join(p.values, ",")
}

func (p *patternList) Set(value string) error {
	if p.isDefault {
		p.values = []string{}
		p.isDefault = false
	}
	p.values = append(p.values, value)
	return nil
}

// collectSources expands the command line arguments into the list of source
// files to scan. Directories are searched with the glob patterns, archives
// are extracted to a temporary directory first. The returned cleanup removes
// those temporary directories.
func collectSources(args, patterns []string) (files []string, cleanup func(), err error) {
	var tempDirs []string
	cleanup = func() {
		for _, dir := range tempDirs {
			_ = os.RemoveAll(dir)
		}
	}
	defer func() {
		if err != nil {
			cleanup()
		}
	}()

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case info.IsDir():
			matches, err := globSources(arg, patterns)
			if err != nil {
				return nil, nil, err
			}
			files = append(files, matches...)
		case archive.IsArchive(arg):
			tmp, err := os.MkdirTemp("", "cfgscan-")
			if err != nil {
				return nil, nil, err
			}
			tempDirs = append(tempDirs, tmp)
			if err := archive.Extract(arg, tmp); err != nil {
				return nil, nil, fmt.Errorf("extract %s: %w", arg, err)
			}
			matches, err := globSources(tmp, patterns)
			if err != nil {
				return nil, nil, err
			}
			files = append(files, matches...)
		default:
			files = append(files, arg)
		}
	}
	return files, cleanup, nil
}

// globSources expands the patterns under root, without duplicates, in a
// stable order.
func globSources(root string, patterns []string) ([]string, error) {
	matched := collections.Set[string]{}
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		matched.AddSlice(matches)
	}
	return matched.SortedValues(strings.Compare), nil
}

// scanFile preprocesses one source file. Unless listOnly is set, the code of
// every configuration is written next to the input or into outDir.
func scanFile(path, outDir string, listOnly bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	processed, configurations := preprocessor.Partition(f)
	if listOnly {
		return configurations, nil
	}

	dir := outDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	for _, configuration := range configurations {
		code := preprocessor.Code(processed, configuration)
		dst := filepath.Join(dir, variantName(path, configuration))
		if err := os.WriteFile(dst, []byte(code), 0o644); err != nil {
			return nil, err
		}
	}
	return configurations, nil
}

// variantName builds the output file name for one configuration of path,
// e.g. "main.cc.WIN32.i". Key characters that are awkward in file names are
// replaced with underscores; the baseline key becomes "default".
func variantName(path, configuration string) string {
	suffix := "default"
	if configuration != "" {
		suffix = strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
				return r
			}
			return '_'
		}, configuration)
	}
	return filepath.Base(path) + "." + suffix + ".i"
}
