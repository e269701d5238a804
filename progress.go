package pi

// ProgressReporter is called during summation with the fraction of
// series terms processed so far, ranging from 0.0 to 1.0.
// It is called at most a hundred times per calculation and always ends with 1.0.
type ProgressReporter func(progress float64)

// progressTracker counts processed terms and reports at fixed strides.
type progressTracker struct {
	report ProgressReporter
	total  uint64 // number of terms
	count  uint64 // processed terms
	next   uint64 // count at which the next report is due
	stride uint64
}

func newProgressTracker(total uint64, report ProgressReporter) *progressTracker {
	stride := (total + 99) / 100
	if stride == 0 {
		stride = 1
	}
	return &progressTracker{
		report: report,
		total:  total,
		next:   stride,
		stride: stride,
	}
}

// step records one processed term.
func (t *progressTracker) step() {
	if t.report == nil {
		return
	}
	t.count++
	if t.count < t.next || t.count >= t.total {
		return
	}
	t.next += t.stride
	t.report(float64(t.count) / float64(t.total))
}

// done reports completion.
func (t *progressTracker) done() {
	if t.report == nil {
		return
	}
	t.report(1.0)
}
