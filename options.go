package subcursor

// GuardMode memilih primitif akses eksklusif yang dipakai Handle.
type GuardMode int

const (
	// GuardLocking memblokir goroutine lain sampai akses dilepas. Re-entry dari
	// goroutine yang sama gagal dengan ErrBorrowConflict.
	GuardLocking GuardMode = iota
	// GuardCooperative gagal seketika dengan ErrBorrowConflict bila akses sedang
	// dipegang. Untuk pemakaian single-owner.
	GuardCooperative
)

func (m GuardMode) String() string {
	switch m {
	case GuardLocking:
		return "locking"
	case GuardCooperative:
		return "cooperative"
	default:
		return "unknown"
	}
}

// Options menyediakan opsi konfigurasi untuk Handle, Cursor dan FileStream.
//
//   - Guard:          primitif akses eksklusif (default GuardLocking)
//   - Preserve:       nilai awal Preserve untuk cursor yang dibangun dari handle
//   - BufferSize:     ukuran chunk WriteTo dalam byte (0 = default)
//   - BufferPoolSize: aktifkan pool buffer untuk WriteTo (0 = nonaktif)
//   - UseMmap:        FileStream memetakan file dengan mmap
//   - ReadOnly:       FileStream dibuka O_RDONLY, tanpa membuat file atau direktori
//
// Lihat DefaultOptions() untuk nilai bawaan.
type Options struct {
	Guard          GuardMode
	Preserve       bool // kembalikan posisi stream fisik setelah tiap operasi
	BufferSize     int  // ukuran chunk untuk WriteTo
	BufferPoolSize int  // 0 = alokasi baru setiap WriteTo
	UseMmap        bool // hanya dipakai OpenFileStream
	ReadOnly       bool // hanya dipakai OpenFileStream
}

// DefaultOptions mengembalikan konfigurasi default yang digunakan NewHandle.
func DefaultOptions() Options {
	return Options{
		Guard:          GuardLocking,
		Preserve:       false,
		BufferSize:     32 * 1024,
		BufferPoolSize: 16,
		UseMmap:        false,
		ReadOnly:       false,
	}
}
