package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) within one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends the span to include other. Spans from different files are
// returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
