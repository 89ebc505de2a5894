package structure

// BucketKind selects one of the three text accumulators of an element.
type BucketKind int

const (
	TextBucket BucketKind = iota
	CommentBucket
	CDATABucket
	bucketCount
)

// String returns the string representation of the bucket kind
func (k BucketKind) String() string {
	switch k {
	case TextBucket:
		return "text"
	case CommentBucket:
		return "comment"
	case CDATABucket:
		return "cdata"
	default:
		return "unknown"
	}
}

// Buckets holds the text, comment and CDATA content found directly under
// an element. Each bucket is independently present or absent.
type Buckets struct {
	values  [bucketCount]string
	present [bucketCount]bool
}

// Get returns the bucket's content and whether it exists.
func (b Buckets) Get(kind BucketKind) (string, bool) {
	if kind < 0 || kind >= bucketCount {
		return "", false
	}
	return b.values[kind], b.present[kind]
}

// Any reports whether at least one bucket exists.
func (b Buckets) Any() bool {
	for _, p := range b.present {
		if p {
			return true
		}
	}
	return false
}

func (b *Buckets) append(kind BucketKind, s string) {
	b.values[kind] += s
	b.present[kind] = true
}

func (b *Buckets) set(kind BucketKind, s string) {
	b.values[kind] = s
	b.present[kind] = true
}
