package gradebook

// Classifier is a function type that maps a grade to a pass/fail [Status].
//
// Classifier follows the same design as the rest of the library's pure
// functions: the same grade always produces the same status, which makes
// classifiers trivial to test and compose. The gradebook applies its
// classifier when building [Student] snapshots, computing [Stats] pass and
// fail counts, and writing the CSV report.
//
// Install a custom classifier with [WithClassifier]; when none is given,
// the gradebook uses [ThresholdClassifier] with the configured pass
// threshold.
type Classifier func(grade float64) Status

// ThresholdClassifier returns a [Classifier] that reports [StatusPassed]
// for grades greater than or equal to threshold and [StatusFailed]
// otherwise.
//
// Example:
//
//	// five-point scale, 3.0 passes
//	classify := gradebook.ThresholdClassifier(3)
//	classify(2.9) // StatusFailed
//	classify(3.0) // StatusPassed
func ThresholdClassifier(threshold float64) Classifier {
	return func(grade float64) Status {
		if grade >= threshold {
			return StatusPassed
		}
		return StatusFailed
	}
}

// PercentClassifier is a [Classifier] for the percent convention: grades
// run 0–100 and 60 or better passes.
var PercentClassifier = ThresholdClassifier(60)

// FivePointClassifier is a [Classifier] for the five-point convention:
// grades run 1–5 and 3 or better passes.
var FivePointClassifier = ThresholdClassifier(3)
