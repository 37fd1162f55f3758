/*
 * files.go, part of parley.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 * Copyright 2026 The parley Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Extensions of the compressed files handled transparently by OpenFile and CreateFile.
const (
	GzipExt = ".gz"
	ZstdExt = ".zst"
)

//CompressionExt returns the compression extension of name (GzipExt or ZstdExt),
//or the empty string if the file is not compressed.
func CompressionExt(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case GzipExt:
		return GzipExt
	case ZstdExt:
		return ZstdExt
	}
	return ""
}

//TrimCompressionExt returns name without its compression extension, if any.
func TrimCompressionExt(name string) string {
	if ext := CompressionExt(name); ext != "" {
		return name[:len(name)-len(ext)]
	}
	return name
}

//closers closes everything it holds, in order, and returns the first error found.
type closers []io.Closer

func (C closers) Close() error {
	var err error
	for _, c := range C {
		if err2 := c.Close(); err2 != nil && err == nil {
			err = err2
		}
	}
	return err
}

type fileReader struct {
	io.Reader
	closers
}

type fileWriter struct {
	io.Writer
	closers
}

//OpenFile opens the file name for reading. gzip and zstd files, recognized by
//their extension, are decompressed on the fly. The caller must close the returned reader.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch CompressionExt(name) {
	case GzipExt:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &fileReader{gz, closers{gz, f}}, nil
	case ZstdExt:
		zs, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		zrc := zs.IOReadCloser()
		return &fileReader{zrc, closers{zrc, f}}, nil
	}
	return f, nil
}

//CreateFile creates (or truncates) the file name for writing. If name ends in a
//compression extension, the data is compressed accordingly. The file is only complete
//after the returned writer is closed.
func CreateFile(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch CompressionExt(name) {
	case GzipExt:
		gz := gzip.NewWriter(f)
		return &fileWriter{gz, closers{gz, f}}, nil
	case ZstdExt:
		zs, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, err
		}
		return &fileWriter{zs, closers{zs, f}}, nil
	}
	return f, nil
}
