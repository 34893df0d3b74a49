package subcursor

import "fmt"

// Builder menyusun Cursor di atas sebuah Handle. Builder bertipe nilai: setiap
// method mengembalikan salinan, sehingga builder parsial bisa dipakai ulang.
//
//	c, err := subcursor.From(h).Start(6).End(11).Build()
type Builder struct {
	handle   *Handle
	start    int64
	end      int64
	bounded  bool
	preserve bool
}

// From memulai builder untuk h. Tanpa End, window bersifat open-ended.
func From(h *Handle) Builder {
	b := Builder{handle: h}
	if h != nil {
		b.preserve = h.options.Preserve
	}
	return b
}

// Start mengatur offset absolut awal window.
func (b Builder) Start(n int64) Builder {
	b.start = n
	return b
}

// End mengatur offset absolut akhir window (eksklusif).
func (b Builder) End(n int64) Builder {
	b.end = n
	b.bounded = true
	return b
}

// OpenEnded menghapus End yang sudah diatur.
func (b Builder) OpenEnded() Builder {
	b.end = 0
	b.bounded = false
	return b
}

// Preserve mengatur apakah posisi stream fisik dikembalikan setelah tiap operasi.
func (b Builder) Preserve(v bool) Builder {
	b.preserve = v
	return b
}

// Build memvalidasi range dan membuat Cursor dengan posisi 0. Panjang stream
// tidak diperiksa di sini; window di luar stream akan berpanjang 0.
func (b Builder) Build() (*Cursor, error) {
	if b.handle == nil {
		return nil, fmt.Errorf("%w: nil handle", ErrInvalidRange)
	}
	if b.start < 0 {
		return nil, fmt.Errorf("%w: start %d < 0", ErrInvalidRange, b.start)
	}
	if b.bounded && b.start > b.end {
		return nil, fmt.Errorf("%w: start %d > end %d", ErrInvalidRange, b.start, b.end)
	}
	return &Cursor{
		h:        b.handle,
		start:    b.start,
		end:      b.end,
		bounded:  b.bounded,
		preserve: b.preserve,
	}, nil
}
