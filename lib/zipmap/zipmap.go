// Copyright 2016 Thijs van Dijk. All rights reserved.
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

/*
	Package zipmap provides a transparent way of opening files by path name,
	where one of the directory names is actually a zip archive.

	Usage:

	Create an empty zipmap. Afterwards, ask it to open a file.
		zm := zipmap.New()
		defer zm.Close()
		f, err := zm.Open("exports/2023-season.zip/run-01.slf")
		if err != nil {
			return err
		}
		defer f.Close()

	A ZipMap caches open zip archives until Close is called. It is not safe for
	concurrent use; give every goroutine its own.
*/
package zipmap

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type ZipMap struct {
	zips map[string]*zip.ReadCloser
}

func New() *ZipMap {
	return &ZipMap{
		zips: make(map[string]*zip.ReadCloser),
	}
}

// Archive splits a path at the first component that names a zip archive.
// It only looks at the path itself, not at the file system.
func Archive(filename string) (archive, member string, ok bool) {
	elems := strings.Split(filepath.ToSlash(filename), "/")
	for i, elem := range elems[:len(elems)-1] {
		if !isZip(elem) {
			continue
		}
		member = strings.Join(elems[i+1:], "/")
		if member == "" {
			return "", "", false
		}
		return filepath.FromSlash(strings.Join(elems[:i+1], "/")), member, true
	}
	return "", "", false
}

func isZip(name string) bool {
	return len(name) > 4 && strings.EqualFold(name[len(name)-4:], ".zip")
}

// Open opens a file by name. Regular files are opened directly; otherwise
// the path is searched for a zip archive containing the rest of the path.
func (z *ZipMap) Open(filename string) (io.ReadCloser, error) {
	fi, err := os.Stat(filename)
	if err == nil {
		if fi.IsDir() {
			return nil, errors.Errorf("'%s' is a directory", filename)
		}
		return os.Open(filename)
	}

	archive, member, ok := Archive(filename)
	if !ok {
		// Return the original error
		return nil, err
	}

	read, err := z.archive(archive)
	if err != nil {
		return nil, err
	}

	for _, zfp := range read.File {
		if zfp.Name == member {
			return zfp.Open()
		}
	}

	return nil, errors.Wrapf(os.ErrNotExist, "file '%s' does not exist in '%s'", member, archive)
}

func (z *ZipMap) archive(filename string) (*zip.ReadCloser, error) {
	if read, ok := z.zips[filename]; ok {
		return read, nil
	}

	read, err := zip.OpenReader(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open archive '%s'", filename)
	}
	z.zips[filename] = read
	return read, nil
}

// Exists tests if a file can be opened
func (z *ZipMap) Exists(filename string) bool {
	f, err := z.Open(filename)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Close closes all cached archives
func (z *ZipMap) Close() error {
	var rv error
	for name, read := range z.zips {
		if err := read.Close(); err != nil && rv == nil {
			rv = err
		}
		delete(z.zips, name)
	}
	return rv
}
