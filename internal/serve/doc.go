// Package serve previews a generated site over local HTTP.
//
// The server is a plain file server over the output directory with
// request logging and context-driven shutdown. The optional watcher
// re-arms itself as directories appear, batches change bursts with a
// debounce window, and triggers rebuilds through a callback; a failed
// rebuild keeps the previous output serving.
package serve
