package subcursor

import "sync/atomic"

// Stats menyimpan statistik akses handle.
// ConflictRatio dalam persentase (0-100) dari seluruh permintaan akses.
type Stats struct {
	Acquisitions  uint64 // akses eksklusif yang berhasil
	Conflicts     uint64 // permintaan yang gagal dengan ErrBorrowConflict
	BytesRead     uint64
	BytesWritten  uint64
	ConflictRatio float64
}

// GetStats mengambil snapshot statistik tanpa mengambil guard.
func (h *Handle) GetStats() Stats {
	acq := atomic.LoadUint64(&h.statAcquired)
	conf := atomic.LoadUint64(&h.statConflicts)
	total := acq + conf
	ratio := 0.0
	if total > 0 {
		ratio = float64(conf) / float64(total) * 100.0
	}
	return Stats{
		Acquisitions:  acq,
		Conflicts:     conf,
		BytesRead:     atomic.LoadUint64(&h.statRead),
		BytesWritten:  atomic.LoadUint64(&h.statWritten),
		ConflictRatio: ratio,
	}
}

// ResetStats mengatur ulang semua penghitung.
func (h *Handle) ResetStats() {
	atomic.StoreUint64(&h.statAcquired, 0)
	atomic.StoreUint64(&h.statConflicts, 0)
	atomic.StoreUint64(&h.statRead, 0)
	atomic.StoreUint64(&h.statWritten, 0)
}

func (h *Handle) addRead(n int) {
	if n > 0 {
		atomic.AddUint64(&h.statRead, uint64(n))
	}
}

func (h *Handle) addWritten(n int) {
	if n > 0 {
		atomic.AddUint64(&h.statWritten, uint64(n))
	}
}
