package present

// Bucket is the color grouping for a match's source tag. Grouping is purely
// visual; match ordering is untouched by it.
type Bucket string

const (
	BucketSkill      Bucket = "skill"
	BucketSummary    Bucket = "summary"
	BucketExperience Bucket = "experience"
	BucketEducation  Bucket = "education"
	BucketProject    Bucket = "project"
	// BucketNeutral absorbs unknown and absent sources.
	BucketNeutral Bucket = "neutral"
)

// SourceBucket maps a match's source tag to its display bucket.
func SourceBucket(source string) Bucket {
	switch source {
	case "skill":
		return BucketSkill
	case "summary":
		return BucketSummary
	case "experience":
		return BucketExperience
	case "education":
		return BucketEducation
	case "project":
		return BucketProject
	default:
		return BucketNeutral
	}
}
