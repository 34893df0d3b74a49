package subcursor

import (
	"bytes"
	"sync"
	"sync/atomic"
)

// Handle membungkus satu stream fisik sehingga banyak cursor dapat memakainya
// bersama. Semua akses ke stream melewati WithExclusiveAccess; paling banyak satu
// akses eksklusif aktif pada satu waktu untuk seluruh cursor yang berbagi handle.
//
// Handle tidak pernah menutup stream; siklus hidup stream milik pemanggil.
type Handle struct {
	stream  Stream
	guard   guard
	options Options
	bufPool *sync.Pool // Pool untuk chunk WriteTo (nil bila dimatikan)

	statAcquired  uint64
	statConflicts uint64
	statRead      uint64
	statWritten   uint64
}

// NewHandle membuat handle dengan opsi default (lihat DefaultOptions).
func NewHandle(s Stream) *Handle {
	return NewHandleWithOptions(s, DefaultOptions())
}

// NewHandleWithOptions membuat handle dengan opsi kustom.
func NewHandleWithOptions(s Stream, opts Options) *Handle {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultOptions().BufferSize
	}

	var pool *sync.Pool
	if opts.BufferPoolSize > 0 {
		size := opts.BufferSize
		pool = &sync.Pool{New: func() any { return make([]byte, size) }}
	}

	return &Handle{
		stream:  s,
		guard:   newGuard(opts.Guard),
		options: opts,
		bufPool: pool,
	}
}

// NewBytesHandle membuat handle di atas BytesStream berisi salinan b.
func NewBytesHandle(b []byte) *Handle {
	return NewHandle(NewBytesStream(bytes.Clone(b)))
}

// WithExclusiveAccess menjalankan fn dengan akses penuh ke stream fisik. Akses
// selalu dilepas setelah fn selesai, termasuk saat fn gagal atau panic.
//
// Mengembalikan ErrBorrowConflict bila akses tidak bisa diberikan (cooperative
// sedang dipegang, atau re-entry dari goroutine yang sama); selain itu error fn
// dikembalikan apa adanya.
func (h *Handle) WithExclusiveAccess(fn func(s Stream) error) error {
	if err := h.guard.acquire(); err != nil {
		atomic.AddUint64(&h.statConflicts, 1)
		return err
	}
	defer h.guard.release()
	atomic.AddUint64(&h.statAcquired, 1)
	return fn(h.stream)
}

// withStream is the value-returning form used by cursors.
func withStream[T any](h *Handle, fn func(s Stream) (T, error)) (T, error) {
	var out T
	err := h.WithExclusiveAccess(func(s Stream) error {
		var err error
		out, err = fn(s)
		return err
	})
	return out, err
}

// Len mengembalikan panjang stream fisik saat ini.
func (h *Handle) Len() (int64, error) {
	return withStream(h, streamLen)
}

// Flush memanggil Flush() atau Sync() milik stream bila ada.
func (h *Handle) Flush() error {
	return h.WithExclusiveAccess(flushStream)
}

// Options mengembalikan opsi yang dipakai handle.
func (h *Handle) Options() Options { return h.options }
