package subcursor

import (
	"bytes"
	"fmt"
	"io"
)

// maxBytesStreamLen membatasi panjang BytesStream; tulisan yang melewatinya gagal
// dengan bytes.ErrTooLarge alih-alih panic di make.
const maxBytesStreamLen = 1 << 32

// BytesStream adalah Stream di memori yang tumbuh saat ditulis melewati akhir.
// Menulis pada posisi setelah akhir buffer mengisi celahnya dengan nol.
type BytesStream struct {
	buf []byte
	pos int64
}

// NewBytesStream membuat stream di atas b (tanpa menyalin).
func NewBytesStream(b []byte) *BytesStream {
	return &BytesStream{buf: b}
}

// Bytes mengembalikan isi buffer (bukan salinan).
func (s *BytesStream) Bytes() []byte { return s.buf }

// Size mengembalikan panjang buffer.
func (s *BytesStream) Size() (int64, error) { return int64(len(s.buf)), nil }

func (s *BytesStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.pos >= int64(len(s.buf)) {
		return 0, io.EOF
	}
	n := copy(p, s.buf[s.pos:])
	s.pos += int64(n)
	return n, nil
}

func (s *BytesStream) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end < s.pos || end > maxBytesStreamLen {
		return 0, fmt.Errorf("bytes stream: write up to offset %d: %w", end, bytes.ErrTooLarge)
	}
	if end > int64(len(s.buf)) {
		if end <= int64(cap(s.buf)) {
			l := len(s.buf)
			s.buf = s.buf[:end]
			clear(s.buf[l:]) // kapasitas lama bisa berisi data sisa
		} else {
			grown := make([]byte, end, growCap(cap(s.buf), end))
			copy(grown, s.buf)
			s.buf = grown
		}
	}
	n := copy(s.buf[s.pos:], p)
	s.pos += int64(n)
	return n, nil
}

func (s *BytesStream) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = int64(len(s.buf)) + offset
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWhence, whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("bytes stream: negative position %d", abs)
	}
	s.pos = abs
	return abs, nil
}

func growCap(old int, need int64) int64 {
	c := int64(old) * 2
	if c < need {
		c = need
	}
	return min(c, maxBytesStreamLen)
}
