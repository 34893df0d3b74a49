package subcursor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// FileStream adalah Stream di atas *os.File. Bila opsi UseMmap aktif, panjang file
// saat dibuka dipetakan dengan mmap sehingga baca/tulis di dalam area itu cukup
// memakai copy memori; sisanya lewat ReadAt/WriteAt.
//
// Handle tidak pernah menutup FileStream; panggil Close sendiri.
type FileStream struct {
	file *os.File // descriptor file fisik
	mmap []byte   // region memory-map (nil bila mmap dimatikan atau file kosong)
	path string
	pos  int64
	ro   bool // dibuka O_RDONLY, mmap PROT_READ
}

// OpenFileStream membuka (atau membuat) file di path untuk dibaca dan ditulis.
// Direktori induk dibuat bila belum ada.
//
// Dengan opts.ReadOnly file harus sudah ada: tidak ada direktori atau file yang
// dibuat, mmap memakai PROT_READ dan setiap Write gagal dengan ErrReadOnly.
func OpenFileStream(path string, opts Options) (*FileStream, error) {
	flag, prot := os.O_RDWR|os.O_CREATE, unix.PROT_READ|unix.PROT_WRITE
	if opts.ReadOnly {
		flag, prot = os.O_RDONLY, unix.PROT_READ
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("gagal membuat direktori: %w", err)
	}

	f, err := os.OpenFile(path, flag, 0o666)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file %s: %w", path, err)
	}

	s := &FileStream{file: f, path: path, ro: opts.ReadOnly}
	if !opts.UseMmap {
		return s, nil
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("gagal stat file %s: %w", path, err)
	}
	if fi.Size() == 0 {
		return s, nil // mmap dengan panjang 0 tidak diizinkan
	}

	mmap, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), prot, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("gagal mmap file %s: %w", path, err)
	}
	s.mmap = mmap
	return s, nil
}

// Path mengembalikan path file pada disk.
func (s *FileStream) Path() string { return s.path }

// ReadOnly melaporkan apakah stream dibuka hanya untuk dibaca.
func (s *FileStream) ReadOnly() bool { return s.ro }

// Mapped melaporkan berapa byte awal file yang dilayani lewat mmap.
func (s *FileStream) Mapped() int { return len(s.mmap) }

// Size mengembalikan panjang file saat ini.
func (s *FileStream) Size() (int64, error) {
	fi, err := s.file.Stat()
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

func (s *FileStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.pos < int64(len(s.mmap)) {
		n := copy(p, s.mmap[s.pos:])
		s.pos += int64(n)
		return n, nil
	}
	n, err := s.file.ReadAt(p, s.pos)
	s.pos += int64(n)
	if n > 0 && err == io.EOF {
		err = nil
	}
	return n, err
}

func (s *FileStream) Write(p []byte) (int, error) {
	if s.ro {
		return 0, ErrReadOnly
	}
	var n int
	if s.pos < int64(len(s.mmap)) {
		n = copy(s.mmap[s.pos:], p)
		s.pos += int64(n)
		p = p[n:]
	}
	if len(p) == 0 {
		return n, nil
	}
	m, err := s.file.WriteAt(p, s.pos)
	s.pos += int64(m)
	return n + m, err
}

func (s *FileStream) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		size, err := s.Size()
		if err != nil {
			return 0, err
		}
		abs = size + offset
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWhence, whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("file stream: negative position %d", abs)
	}
	s.pos = abs
	return abs, nil
}

// Flush memaksa semua data tersimpan ke disk.
func (s *FileStream) Flush() error {
	if s.ro {
		return nil
	}
	if s.mmap != nil {
		if err := unix.Msync(s.mmap, unix.MS_SYNC); err != nil {
			return fmt.Errorf("gagal msync %s: %w", s.path, err)
		}
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("gagal sync %s: %w", s.path, err)
	}
	return nil
}

// Close melepas mmap dan menutup file, mengembalikan error pertama.
func (s *FileStream) Close() error {
	var firstErr error
	if s.mmap != nil {
		if err := unix.Munmap(s.mmap); err != nil {
			firstErr = fmt.Errorf("gagal unmap %s: %w", s.path, err)
		}
		s.mmap = nil
	}
	if err := s.file.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("gagal menutup %s: %w", s.path, err)
	}
	return firstErr
}
