package subcursor

import (
	"io"
	"os"
)

// Stream adalah stream fisik yang dibagi oleh semua cursor: apa pun yang bisa
// read, write dan seek (file, buffer memori, dsb).
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
}

type sizer interface {
	Size() (int64, error)
}

type statter interface {
	Stat() (os.FileInfo, error)
}

// streamLen mengembalikan panjang stream saat ini. Urutan: Size(), Stat(), lalu
// Seek ke akhir dan kembali ke posisi semula.
func streamLen(s Stream) (int64, error) {
	switch v := s.(type) {
	case sizer:
		return v.Size()
	case statter:
		fi, err := v.Stat()
		if err != nil {
			return 0, err
		}
		return fi.Size(), nil
	}

	return seekLen(s)
}

func seekLen(s io.Seeker) (int64, error) {
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

// flushStream memanggil Flush() atau Sync() bila stream memilikinya.
func flushStream(s Stream) error {
	switch v := s.(type) {
	case interface{ Flush() error }:
		return v.Flush()
	case interface{ Sync() error }:
		return v.Sync()
	}
	return nil
}

// ReadOnly membungkus sumber read-only (mis. *bytes.Reader, *io.SectionReader)
// agar bisa dipakai sebagai Stream. Write selalu gagal dengan ErrReadOnly.
func ReadOnly(rs io.ReadSeeker) Stream {
	return readOnlyStream{rs}
}

type readOnlyStream struct {
	io.ReadSeeker
}

func (readOnlyStream) Write([]byte) (int, error) { return 0, ErrReadOnly }

func (r readOnlyStream) Size() (int64, error) {
	if s, ok := r.ReadSeeker.(interface{ Size() int64 }); ok {
		return s.Size(), nil
	}
	return seekLen(r.ReadSeeker)
}
