// Package render implements the parallel tile pipeline: a scheduler
// feeds a shuffled tile order into a bounded work queue, a pool of
// workers fills each tile's pixel block under simulated load, and a
// single merger copies completed tiles into the shared frame buffer. A
// coordinator fans one external stop signal out to every component over
// the same queues, so shutdown is cooperative and deadlock-free from
// any goroutine at any time.
package render
