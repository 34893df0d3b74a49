package subcursor

import (
	"fmt"
	"io"
	"strconv"
)

// Cursor adalah satu window [start, end) di atas stream fisik milik Handle, dengan
// posisi lokalnya sendiri. Semua koordinat publik relatif terhadap window; offset
// absolut di stream selalu start+posisi.
//
// Cursor yang berbeda aman dipakai dari goroutine berbeda selama handle memakai
// GuardLocking. Satu *Cursor tidak boleh dipakai bersamaan oleh beberapa goroutine.
type Cursor struct {
	h        *Handle
	start    int64 // offset absolut awal window
	end      int64 // offset absolut akhir window, hanya berlaku bila bounded
	bounded  bool  // false = end mengikuti panjang stream saat ini
	pos      int64 // posisi lokal, 0 <= pos <= panjang window
	preserve bool
}

// Handle mengembalikan handle yang dipakai cursor.
func (c *Cursor) Handle() *Handle { return c.h }

// StartOffset mengembalikan offset absolut awal window.
func (c *Cursor) StartOffset() int64 { return c.start }

// EndOffset mengembalikan offset absolut akhir window; ok bernilai false untuk
// window open-ended.
func (c *Cursor) EndOffset() (end int64, ok bool) { return c.end, c.bounded }

// IsBounded melaporkan apakah window memiliki end tetap.
func (c *Cursor) IsBounded() bool { return c.bounded }

// Position mengembalikan posisi lokal di dalam window.
func (c *Cursor) Position() int64 { return c.pos }

// Offset reports the start of the window in the physical stream.
func (c *Cursor) Offset() int64 { return c.start }

// Size reports the window length, or -1 for an open-ended window.
func (c *Cursor) Size() int64 {
	if !c.bounded {
		return -1
	}
	return c.end - c.start
}

// Len mengembalikan panjang window. Untuk window open-ended panjang dihitung dari
// panjang stream saat ini (0 bila start berada di luar stream).
func (c *Cursor) Len() (int64, error) {
	if c.bounded {
		return c.end - c.start, nil
	}
	return withStream(c.h, c.lenLocked)
}

// lenLocked menghitung panjang window; pemanggil harus memegang akses eksklusif.
func (c *Cursor) lenLocked(s Stream) (int64, error) {
	if c.bounded {
		return c.end - c.start, nil
	}
	n, err := streamLen(s)
	if err != nil {
		return 0, err
	}
	if n <= c.start {
		return 0, nil
	}
	return n - c.start, nil
}

// Builder mengembalikan builder untuk cursor saudara dengan handle, start, end
// dan preserve yang sama. Posisi cursor baru selalu 0.
func (c *Cursor) Builder() Builder {
	b := From(c.h).Start(c.start).Preserve(c.preserve)
	if c.bounded {
		b = b.End(c.end)
	}
	return b
}

// Section membuat window bounded bersarang pada [off, off+n) relatif terhadap
// window ini. Untuk parent bounded, section tidak boleh melewati end parent.
func (c *Cursor) Section(off, n int64) (*Cursor, error) {
	if off < 0 || n < 0 {
		return nil, fmt.Errorf("%w: section offset %d length %d", ErrInvalidRange, off, n)
	}
	start := c.start + off
	end := start + n
	if c.bounded && end > c.end {
		return nil, fmt.Errorf("%w: section end %d > parent end %d", ErrInvalidRange, end, c.end)
	}
	return c.Builder().Start(start).End(end).Build()
}

// String mengikuti format subcursor<panjang@posisi, preserve=...>; panjang window
// open-ended ditulis "?" karena menghitungnya membutuhkan akses ke stream.
func (c *Cursor) String() string {
	length := "?"
	if c.bounded {
		length = strconv.FormatInt(c.end-c.start, 10)
	}
	return fmt.Sprintf("subcursor<%s@%d, preserve=%t>", length, c.pos, c.preserve)
}

// run menjalankan fn di bawah akses eksklusif. Dengan preserve, posisi stream
// fisik dikembalikan ke nilai semula setelah fn selesai.
func (c *Cursor) run(fn func(s Stream) error) error {
	return c.h.WithExclusiveAccess(func(s Stream) error {
		if !c.preserve {
			return fn(s)
		}
		saved, err := s.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
		err = fn(s)
		if _, serr := s.Seek(saved, io.SeekStart); serr != nil && err == nil {
			err = serr
		}
		return err
	})
}
