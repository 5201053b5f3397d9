// Package trace records what the compiler is doing as a stream of events.
//
// Spans mark the start and end of a driver command, a pass or a single
// file; points mark instant events such as cache hits. Output is either
// text for humans or NDJSON for tools.
//
//	tjc ir --verbose prog.tj
//	tjc ir --trace=build.ndjson --trace-level=detail src/
//
// Levels select how much is written: phase shows driver and pass
// boundaries, detail adds per-file events, debug adds AST nodes. Failure
// points are written at every level except off.
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
