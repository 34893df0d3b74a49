package subcursor

// getBufFromPool mengambil buffer dari pool atau membuat baru jika pool dimatikan.
// Ukuran buffer selalu options.BufferSize byte.
func (h *Handle) getBufFromPool() []byte {
	if h.bufPool != nil {
		return h.bufPool.Get().([]byte)
	}
	return make([]byte, h.options.BufferSize)
}

// returnBufToPool mengembalikan buffer ke pool. Hanya buffer dengan ukuran tepat
// yang dimasukkan kembali.
func (h *Handle) returnBufToPool(buf []byte) {
	if h.bufPool != nil && len(buf) == h.options.BufferSize {
		h.bufPool.Put(buf)
	}
}
