/*
Package status reports the progress of an inlining run to the terminal.

	            +-------------+
	            |  Reporter   |
	            +------+------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+------+           +------+------+
	|  Spinner   |           | Diagnostics |
	| (progress) |           |  (lines)    |
	+------------+           +-------------+

🎯 Purpose:
- Shows live progress while artifacts are transformed
- Prints diagnostics as severity-graded lines
- Keeps running error and warning tallies for the verdict
- Mirrors every event into zerolog for machine consumption

🔄 Flow:
1. StartOperation begins the spinner for a batch of files
2. FileDone advances progress and prints an aligned result line
3. Error and Warning print diagnostic lines as they arrive
4. FinishOperation ends the spinner with a verdict summary

⚡ Key Behaviors:
- The spinner is suspended around every printed line and resumed
  afterwards, so diagnostics never tear the animation
- All methods are safe for concurrent use
- Output goes to the configured writer (stdout unless overridden)

🤝 Interfaces:
- Reporter: the single reporting surface the operation package drives
- Formatting helpers are exported for callers that render their own lines

🔍 Example:

	reporter := status.New(status.Options{})

	reporter.StartOperation(ctx, len(artifacts))

	for res := range results {
		reporter.FileDone(ctx, res.File, errs, warns)
	}

	reporter.FinishOperation(ctx, success)
*/
package status
