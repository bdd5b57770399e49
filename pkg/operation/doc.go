/*
Package operation orchestrates one post-build locale inlining run.

	+-------------+     +-------------+     +-------------+
	|  Classify   | --> |   Consume   | --> |  Transform  |
	| (manifest)  |     | (read+del)  |     |   (pool)    |
	+-------------+     +------+------+     +------+------+
	                           |                   |
	                           v                   v
	                    +-------------+     +-------------+
	                    |  Reconcile  |     |  Aggregate  |
	                    | (pass-thru) |     |  (verdict)  |
	                    +-------------+     +-------------+

🎯 Purpose:
- Drives the pipeline from build manifest to per-locale output trees
- Turns per-file diagnostics into a single overall verdict
- Guarantees every staging file ends up in every output root exactly once

🔄 Flow:
1. Load the manifest and classify artifacts into transform candidates
2. Consume each candidate: read its bytes (and map companion), delete it
   from staging
3. Submit all requests to the bounded transform pool
4. Aggregate results as they stream back, reporting every diagnostic
5. Reconcile: copy everything not consumed into every locale's output root
6. Finish with the verdict

⚡ Key Behaviors:
- A fatal consumption error aborts before any transform runs; the pool is
  still released
- Error-severity diagnostics flip the verdict false but never stop the run
- Reconciliation runs whenever consumption completed, even on a false
  verdict, so failed builds are still inspectable

🤝 Interfaces:
- inline.Engine: the per-file transformer (translate.Engine in production)
- status.Reporter: progress and diagnostic narration
- config.Config: staging/output roots, exclusions, policy knobs

🔍 Example:

	op, err := operation.New(operation.Options{
		Config:   cfg,
		Reporter: reporter,
		Targets:  targets,
	})
	if err != nil {
		return err
	}

	ok, err := op.Inline(ctx)
	if err != nil {
		return err
	}
	if !ok {
		os.Exit(1)
	}
*/
package operation
