/*
Package inline defines the transformation vocabulary and the bounded worker
pool that carries locale inlining.

	+-----------+      +--------+      +-----------+
	|  Request  | ---> |  Pool  | ---> |  Result   |
	| (consumed |      | (N     |      | (diags,   |
	|  artifact)|      | workers)|     |  stream)  |
	+-----------+      +--------+      +-----------+

🎯 Purpose:
- Describes one artifact's transform job (Request) and outcome (Result)
- Runs an Engine across a fixed worker pool
- Streams results back in completion order for early reporting

🔄 Flow:
1. Orchestrator consumes artifacts and builds Requests
2. SubmitAll feeds them to the workers
3. Each worker runs Engine.Inline and pushes a Result
4. Consumer drains the stream as results complete
5. Release tears the pool down, on every path

⚡ Key Responsibilities:
- Bounded concurrency (no per-request goroutines)
- Lazy result delivery with backpressure
- Idempotent teardown, safe mid-stream

🤝 Interfaces:
- Engine: the actual text transformation, pluggable and opaque here

📝 Design Philosophy:
Per-artifact failures live inside Result as error diagnostics. The pool
never sees a Go error from a transform, so a broken artifact cannot stop
its siblings. Structural faults (bad construction, cancelled context)
belong to the caller.

🔍 Example:

	pool, err := inline.NewPool(engine, 4)
	if err != nil { ... }
	defer pool.Release()
	for res := range pool.SubmitAll(ctx, reqs) {
		report(res)
	}
*/
package inline
