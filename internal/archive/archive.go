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

// Package archive unpacks source archives so their contents can be scanned
// like a checked-out source tree.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// tarDecoders maps tar archive suffixes to the decompressor wrapping the raw
// file stream. Plain .tar needs no wrapping.
var tarDecoders = map[string]func(io.Reader) (io.Reader, error){
	".tar":     func(r io.Reader) (io.Reader, error) { return r, nil },
	".tar.gz":  gzipDecoder,
	".tgz":     gzipDecoder,
	".tar.bz2": func(r io.Reader) (io.Reader, error) { return bzip2.NewReader(r), nil },
	".tar.xz":  func(r io.Reader) (io.Reader, error) { return xz.NewReader(r) },
}

func gzipDecoder(r io.Reader) (io.Reader, error) {
	return gzip.NewReader(r)
}

// IsArchive reports whether the path names a supported archive format.
func IsArchive(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, ".zip") {
		return true
	}
	for suffix := range tarDecoders {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Extract unpacks the archive into outDir, creating the directory if needed.
// The format is picked by file name suffix.
func Extract(archivePath, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	name := strings.ToLower(filepath.Base(archivePath))
	if strings.HasSuffix(name, ".zip") {
		return unzip(archivePath, outDir)
	}
	for suffix, decode := range tarDecoders {
		if strings.HasSuffix(name, suffix) {
			return untarFile(archivePath, decode, outDir)
		}
	}
	return fmt.Errorf("unsupported archive: %s", name)
}

func untarFile(archivePath string, decode func(io.Reader) (io.Reader, error), outDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := decode(f)
	if err != nil {
		return err
	}
	if closer, ok := r.(io.Closer); ok {
		defer closer.Close()
	}
	return untar(r, outDir)
}

func untar(r io.Reader, outDir string) error {
	tr := tar.NewReader(r)
	for {
		h, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		dst := filepath.Join(outDir, filepath.FromSlash(h.Name))
		switch h.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(dst, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeEntry(dst, tr); err != nil {
				return err
			}
		default:
			// Links and special files are of no use to a source scan.
		}
	}
	return nil
}

func unzip(zipPath, outDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()
	for _, f := range r.File {
		dst := filepath.Join(outDir, filepath.FromSlash(f.Name))
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dst, 0o755); err != nil {
				return err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeEntry(dst, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(dst string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
