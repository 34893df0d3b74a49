package subcursor

import (
	"fmt"
	"io"
)

// Read membaca paling banyak len(p) byte dari posisi saat ini tanpa melewati akhir
// window. Hasil pendek bukan error; akhir window dilaporkan sebagai 0, io.EOF.
func (c *Cursor) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c.bounded && c.pos >= c.end-c.start {
		return 0, io.EOF
	}

	var n int
	err := c.run(func(s Stream) error {
		var err error
		n, err = c.readLocked(s, p, c.pos)
		return err
	})
	c.pos += int64(n)
	c.h.addRead(n)
	return n, err
}

func (c *Cursor) readLocked(s Stream, p []byte, off int64) (int, error) {
	wl, err := c.lenLocked(s)
	if err != nil {
		return 0, err
	}
	remaining := wl - off
	if remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}
	if _, err := s.Seek(c.start+off, io.SeekStart); err != nil {
		return 0, err
	}
	n, err := s.Read(p)
	if n > 0 && err == io.EOF {
		err = nil // dilaporkan pada panggilan berikutnya
	}
	return n, err
}

// Write menulis p pada posisi saat ini. Window bounded tidak pernah tumbuh: byte
// yang melewati end tidak ditulis dan Write mengembalikan io.ErrShortWrite.
// Window open-ended menulis seluruh p dan boleh memperpanjang stream.
func (c *Cursor) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c.bounded && c.pos >= c.end-c.start {
		return 0, io.ErrShortWrite
	}

	var n int
	err := c.run(func(s Stream) error {
		var err error
		n, err = c.writeLocked(s, p, c.pos)
		return err
	})
	c.pos += int64(n)
	c.h.addWritten(n)
	return n, err
}

func (c *Cursor) writeLocked(s Stream, p []byte, off int64) (int, error) {
	short := false
	if c.bounded {
		remaining := c.end - c.start - off
		if remaining <= 0 {
			return 0, io.ErrShortWrite
		}
		if int64(len(p)) > remaining {
			p = p[:remaining]
			short = true
		}
	}
	if _, err := s.Seek(c.start+off, io.SeekStart); err != nil {
		return 0, err
	}
	n, err := s.Write(p)
	if err == nil && short {
		err = io.ErrShortWrite
	}
	return n, err
}

// ReadAt membaca len(p) byte mulai offset lokal off tanpa mengubah posisi cursor.
// Bila window berakhir sebelum p penuh, atau off berada di atau setelah akhir
// window, ReadAt mengembalikan io.EOF seperti io.SectionReader. Hanya off negatif
// yang gagal dengan ErrOutOfBounds.
func (c *Cursor) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("%w: offset %d < 0", ErrOutOfBounds, off)
	}
	if len(p) == 0 {
		return 0, nil
	}

	var n int
	err := c.run(func(s Stream) error {
		wl, err := c.lenLocked(s)
		if err != nil {
			return err
		}
		if off >= wl {
			return io.EOF
		}
		want := p
		if rem := wl - off; int64(len(want)) > rem {
			want = want[:rem]
		}
		if _, err := s.Seek(c.start+off, io.SeekStart); err != nil {
			return err
		}
		n, err = io.ReadFull(s, want)
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		if err == nil && len(want) < len(p) {
			err = io.EOF
		}
		return err
	})
	c.h.addRead(n)
	return n, err
}

// WriteAt menulis p mulai offset lokal off tanpa mengubah posisi cursor, dengan
// aturan batas yang sama seperti Write.
func (c *Cursor) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("%w: offset %d < 0", ErrOutOfBounds, off)
	}
	if len(p) == 0 {
		return 0, nil
	}

	var n int
	err := c.run(func(s Stream) error {
		wl, err := c.lenLocked(s)
		if err != nil {
			return err
		}
		if off > wl {
			return fmt.Errorf("%w: offset %d > window length %d", ErrOutOfBounds, off, wl)
		}
		n, err = c.writeLocked(s, p, off)
		return err
	})
	c.h.addWritten(n)
	return n, err
}

// Seek mengatur posisi lokal dan mengembalikan posisi baru (bukan offset absolut).
//
//   - io.SeekStart: offset di atas panjang window gagal dengan ErrOutOfBounds untuk
//     window bounded; window open-ended di-clamp ke panjangnya saat ini.
//   - io.SeekCurrent, io.SeekEnd: hasil di luar [0, panjang window] gagal dengan
//     ErrOutOfBounds.
//
// Window bounded tidak menyentuh stream; window open-ended mengambil akses sekali
// untuk membaca panjang stream.
func (c *Cursor) Seek(offset int64, whence int) (int64, error) {
	wl, err := c.Len()
	if err != nil {
		return c.pos, err
	}

	var target int64
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return c.pos, fmt.Errorf("%w: seek to %d", ErrOutOfBounds, offset)
		}
		target = offset
		if target > wl {
			if c.bounded {
				return c.pos, fmt.Errorf("%w: seek to %d > window length %d", ErrOutOfBounds, target, wl)
			}
			target = wl
		}
	case io.SeekCurrent:
		target = c.pos + offset
	case io.SeekEnd:
		target = wl + offset
	default:
		return c.pos, fmt.Errorf("%w: %d", ErrInvalidWhence, whence)
	}

	if target < 0 || target > wl {
		return c.pos, fmt.Errorf("%w: seek to %d outside [0, %d]", ErrOutOfBounds, target, wl)
	}
	c.pos = target
	return c.pos, nil
}

// SetPosition sama dengan Seek(pos, io.SeekStart).
func (c *Cursor) SetPosition(pos int64) error {
	_, err := c.Seek(pos, io.SeekStart)
	return err
}

// WriteTo menyalin isi window dari posisi saat ini sampai akhir ke w, per chunk
// Options.BufferSize. Setiap chunk adalah satu akses eksklusif.
func (c *Cursor) WriteTo(w io.Writer) (int64, error) {
	buf := c.h.getBufFromPool()
	defer c.h.returnBufToPool(buf)

	var total int64
	for {
		n, err := c.Read(buf)
		if n > 0 {
			wn, werr := w.Write(buf[:n])
			total += int64(wn)
			if werr != nil {
				return total, werr
			}
			if wn < n {
				return total, io.ErrShortWrite
			}
		}
		switch {
		case err == io.EOF:
			return total, nil
		case err != nil:
			return total, err
		case n == 0:
			return total, io.ErrNoProgress
		}
	}
}

// Flush meneruskan flush ke stream fisik (lihat Handle.Flush).
func (c *Cursor) Flush() error {
	return c.h.Flush()
}
