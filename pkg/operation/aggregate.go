package operation

import (
	"context"

	"github.com/walteh/localizerc/pkg/inline"
)

// 📊 aggregate drains the result stream, routing every diagnostic to the
// reporter as it arrives. Error severity flips the verdict but never stops
// the drain: remaining files still transform and still report.
func (o *operator) aggregate(ctx context.Context, results <-chan inline.Result) bool {
	success := true

	for res := range results {
		var errs, warns int
		for _, diag := range res.Diagnostics {
			switch diag.Severity {
			case inline.SeverityError:
				errs++
				success = false
				o.reporter.Error(ctx, res.File, diag.Message)
			default:
				warns++
				o.reporter.Warning(ctx, res.File, diag.Message)
			}
		}
		o.reporter.FileDone(ctx, res.File, errs, warns)
	}

	return success
}
