package subcursor

import (
	"sync"
	"sync/atomic"
)

// guard memberi akses eksklusif singkat ke stream fisik. Setiap acquire yang
// sukses wajib dipasangkan dengan satu release.
type guard interface {
	acquire() error
	release()
}

func newGuard(mode GuardMode) guard {
	if mode == GuardCooperative {
		return &cooperativeGuard{}
	}
	return &lockingGuard{}
}

// cooperativeGuard gagal cepat: tidak pernah menunggu.
type cooperativeGuard struct {
	held atomic.Bool
}

func (g *cooperativeGuard) acquire() error {
	if !g.held.CompareAndSwap(false, true) {
		return ErrBorrowConflict
	}
	return nil
}

func (g *cooperativeGuard) release() { g.held.Store(false) }

// lockingGuard memblokir sampai mutex bebas. owner berisi id goroutine pemegang
// (0 = bebas) sehingga re-entry dari goroutine yang sama terdeteksi alih-alih
// deadlock.
type lockingGuard struct {
	mu    sync.Mutex
	owner atomic.Uint64
}

func (g *lockingGuard) acquire() error {
	// id dicatat pada setiap acquire yang sukses: pemegang adalah satu-satunya
	// goroutine yang bisa membaca id-nya sendiri untuk pemeriksaan re-entry nanti.
	id := goroutineID()
	// owner hanya bisa sama dengan id bila goroutine ini sendiri pemegangnya.
	if id != 0 && g.owner.Load() == id {
		return ErrBorrowConflict
	}
	g.mu.Lock()
	g.owner.Store(id)
	return nil
}

func (g *lockingGuard) release() {
	g.owner.Store(0)
	g.mu.Unlock()
}
