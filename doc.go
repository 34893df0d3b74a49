// Package subcursor exposes a contiguous sub-range [start, end) of one
// random-access byte stream as an independent io.Reader / io.Writer / io.Seeker,
// without copying data. Many windows may share one physical stream through a
// Handle, which serialises every access behind a single exclusive guard.
//
// The library is organised into several files for clarity:
//
//	options.go      – configuration struct & defaults
//	errors.go       – sentinel errors
//	stream.go       – physical stream contract & length lookup
//	guard.go        – cooperative & locking exclusive-access guards
//	goid.go         – goroutine id for re-entry detection
//	handle.go       – shared stream handle
//	builder.go      – window construction
//	cursor.go       – window state & accessors
//	io.go           – read/write/seek logic & offset translation
//	buffer.go       – pooled copy buffers
//	stats.go        – lightweight stats accessors
//	bytes_stream.go – in-memory stream
//	file_stream.go  – file stream with optional mmap
//
// Typical use, one handle and one window per logical sub-file:
//
//	h := subcursor.NewHandle(stream)
//	a, _ := subcursor.From(h).Start(0).End(5).Build()
//	rest, _ := subcursor.From(h).Start(12).Build() // open-ended
package subcursor
