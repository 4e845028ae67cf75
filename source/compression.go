package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// readCloser pairs a decompressing reader with the close chain that releases
// both the decompressor and the underlying file.
type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}

// OpenFile opens a log file for sequential reading, transparently unwrapping
// gzip and zstd streams detected by their magic bytes. Rotated Zeek logs are
// usually gzipped; everything else passes through untouched.
func OpenFile(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	buffered := bufio.NewReader(file)
	magic, err := buffered.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		file.Close()
		return nil, fmt.Errorf("sniff %s: %w", path, err)
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("gzip open %s: %w", path, err)
		}
		return &readCloser{
			Reader: gz,
			close: func() error {
				err := gz.Close()
				if cerr := file.Close(); err == nil {
					err = cerr
				}
				return err
			},
		}, nil

	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(buffered)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("zstd open %s: %w", path, err)
		}
		return &readCloser{
			Reader: dec,
			close: func() error {
				dec.Close()
				return file.Close()
			},
		}, nil
	}

	return &readCloser{
		Reader: buffered,
		close:  file.Close,
	}, nil
}
