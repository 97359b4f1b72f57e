// Package consolesink provides the platform console sink: formatted
// lines written to an io.Writer (default: os.Stderr). It is the default
// sink of the process-wide policy.
//
// Writers are split into specialized sync and async variants:
//
//   - SyncWriter formats and writes on the caller's goroutine. Uses
//     TryLock for zero-alloc formatting into a writer-owned buffer.
//   - AsyncWriter provides a bounded queue with per-level
//     OverflowPolicy and a dedicated background goroutine.
//
// New chooses the variant from the Async field in Config.
package consolesink
