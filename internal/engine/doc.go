// Package engine implements the metric tree core: construction-time
// validation of the weighted tree, bottom-up score propagation, status
// classification, root-cause tracing, and alert extraction.
//
// Every operation is a pure, synchronous function over the immutable
// Tree; concurrent callers need no coordination.
package engine
