package file

import (
	"strings"
)

// Category is a derived grouping of files by MIME-type prefix. It is never
// stored; every consumer computes it through Classify so dashboard counters
// and category pages can never disagree.
type Category string

const (
	CategoryDocuments Category = "documents"
	CategoryImages    Category = "images"
	CategoryVideos    Category = "videos"
	CategoryAudio     Category = "audio"
	CategoryOther     Category = "other"
)

// Categories lists the browsable categories, in dashboard order. Other is
// excluded: unclassified files appear only in the all-files view.
var Categories = []Category{CategoryDocuments, CategoryImages, CategoryVideos, CategoryAudio}

// Classify maps a MIME type to its category. Total over all strings: a value
// with no known prefix, including one without a "/" separator, falls through
// to CategoryOther. Every application/* type counts as a document, zips and
// other binaries included.
func Classify(mimeType string) Category {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return CategoryImages
	case strings.HasPrefix(mimeType, "video/"):
		return CategoryVideos
	case strings.HasPrefix(mimeType, "audio/"):
		return CategoryAudio
	case strings.HasPrefix(mimeType, "application/"), strings.HasPrefix(mimeType, "text/"):
		return CategoryDocuments
	default:
		return CategoryOther
	}
}

// ParseCategory resolves a category name from a route segment.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryDocuments:
		return CategoryDocuments, true
	case CategoryImages:
		return CategoryImages, true
	case CategoryVideos:
		return CategoryVideos, true
	case CategoryAudio:
		return CategoryAudio, true
	case CategoryOther:
		return CategoryOther, true
	}
	return "", false
}

// FilterByCategory returns the subset of records classified under c,
// preserving backend order.
func FilterByCategory(rs Records, c Category) Records {
	out := make(Records, 0, len(rs))
	for _, r := range rs {
		if r != nil && Classify(r.MimeType) == c {
			out = append(out, r)
		}
	}
	return out
}

// CategoryCounts holds per-category totals for the dashboard tiles.
type CategoryCounts struct {
	Documents int `json:"documents"`
	Images    int `json:"images"`
	Videos    int `json:"videos"`
	Audio     int `json:"audio"`
}

// CountByCategory tallies records into dashboard counters with a single pass
// over one fetch. Files classified as other are not counted anywhere.
func CountByCategory(rs Records) CategoryCounts {
	var c CategoryCounts
	for _, r := range rs {
		if r == nil {
			continue
		}
		switch Classify(r.MimeType) {
		case CategoryDocuments:
			c.Documents++
		case CategoryImages:
			c.Images++
		case CategoryVideos:
			c.Videos++
		case CategoryAudio:
			c.Audio++
		}
	}
	return c
}
