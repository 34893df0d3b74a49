package subcursor

import "errors"

var (
	// ErrInvalidRange dikembalikan saat membangun window dengan start < 0 atau start > end.
	ErrInvalidRange = errors.New("subcursor: invalid range")
	// ErrOutOfBounds dikembalikan saat seek atau offset berada di luar [0, panjang window].
	ErrOutOfBounds = errors.New("subcursor: out of bounds")
	// ErrBorrowConflict dikembalikan saat akses eksklusif diminta ketika sedang dipegang,
	// termasuk re-entry yang tidak disengaja.
	ErrBorrowConflict = errors.New("subcursor: borrow conflict")
	// ErrInvalidWhence dikembalikan oleh Seek untuk whence yang tidak dikenal.
	ErrInvalidWhence = errors.New("subcursor: invalid whence")
	// ErrReadOnly dikembalikan saat menulis ke stream yang dibungkus ReadOnly atau
	// ke FileStream yang dibuka dengan Options.ReadOnly.
	ErrReadOnly = errors.New("subcursor: stream is read-only")
)
