// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker and must not block; Stop halts it and waits until
// the work in progress has returned.
//
// Example implementation:
//
//	type MyWorker struct{ job service.ClientSyncJob }
//
//	func (w *MyWorker) Run()  { w.job.Start(ctx, time.Minute) }
//	func (w *MyWorker) Stop() { w.job.Stop() }
type Worker interface {
	Run()
	Stop()
}
