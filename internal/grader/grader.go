package grader

// Pass rate thresholds for the quality grades, in percent. Each bound is
// inclusive and evaluated highest-first.
const (
	ExcellentThreshold  = 95.0
	GoodThreshold       = 87.5
	AcceptableThreshold = 75.0
)

// Label is an ordinal quality grade
type Label string

const (
	GradeExcellent  Label = "EXCELLENT"
	GradeGood       Label = "GOOD"
	GradeAcceptable Label = "ACCEPTABLE"
	GradeFail       Label = "FAIL"
)

// Grade maps a pass rate (0-100) to a quality grade and its rationale.
// It is a pure function: same input, same output, always.
func Grade(passRate float64) (Label, string) {
	switch {
	case passRate >= ExcellentThreshold:
		return GradeExcellent, "No significant pixel defects detected. Image is suitable for production use."
	case passRate >= GoodThreshold:
		return GradeGood, "Minor pixel defects detected but within acceptable limits. Image quality is good."
	case passRate >= AcceptableThreshold:
		return GradeAcceptable, "Some pixel defects detected but still within acceptable range. Consider monitoring."
	default:
		return GradeFail, "Significant pixel defects detected. Image quality is below acceptable standards."
	}
}

// RecommendedAction returns the follow-up guidance attached to a grade in
// report recommendations.
func RecommendedAction(grade Label) string {
	switch grade {
	case GradeExcellent:
		return "Continue with current process."
	case GradeGood:
		return "Monitor quality trends."
	case GradeAcceptable:
		return "Investigate potential causes and implement improvements."
	default:
		return "Review and correct the imaging process immediately."
	}
}
