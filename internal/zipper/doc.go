// Package zipper provides the orchestration logic for compressing a
// directory tree into a single zip archive.
//
// # Manager
//
// The Manager coordinates the whole run:
//
//  1. Walk the source tree, pruning excluded names
//  2. Write every discovered file into the archive, in order
//  3. Compute summary statistics
//
// # Basic Usage
//
//	manager := zipper.NewManager(settings, reporter)
//
//	if err := manager.Discover(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	st, err := manager.Write(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(st.FileCount, "files archived")
//
// Run combines both phases for callers that don't need anything in
// between.
//
// # Progress Reporting
//
// The Manager never prints. All progress flows through the Reporter
// interface:
//
//	type Reporter interface {
//	    DiscoveryProgress(count int)
//	    WriteProgress(index, total int, relPath string)
//	    Complete(st stats.RunStats)
//	    Error(msg string)
//	}
//
// Interactive frontends can instead poll Progress(), which reads
// atomic counters and is safe from any goroutine.
//
// # Error Kinds
//
// Failures keep their kind: a missing source surfaces as
// *discover.DiscoveryError, zero eligible files as ErrEmptySource,
// archive failures as *archive.WriteError, and user cancellation as
// the context's error. No failed I/O operation is retried.
package zipper
