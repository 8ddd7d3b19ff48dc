package file

import (
	"strings"
)

// PreviewMode tells the view how a file may be presented once an ephemeral
// view URL is resolved.
type PreviewMode string

const (
	// PreviewInline renders inside the current view.
	PreviewInline PreviewMode = "inline"
	// PreviewNewTab opens the resolved URL in a new browsing context.
	// Inline playback/rendering for these types is unreliable across
	// runtimes, so they always go out-of-view.
	PreviewNewTab PreviewMode = "new_tab"
	// PreviewUnavailable means no preview is offered; the view names the
	// raw MIME type instead.
	PreviewUnavailable PreviewMode = "unavailable"
)

// PreviewModeFor dispatches by classified category, not exact MIME string,
// with the one exact-match exception the categories cannot express: PDFs are
// documents but do get a new-tab preview.
func PreviewModeFor(mimeType string) PreviewMode {
	switch Classify(mimeType) {
	case CategoryImages:
		return PreviewInline
	case CategoryVideos, CategoryAudio:
		return PreviewNewTab
	case CategoryDocuments:
		if mimeType == "application/pdf" || strings.HasPrefix(mimeType, "text/") {
			return PreviewNewTab
		}
		return PreviewUnavailable
	default:
		return PreviewUnavailable
	}
}
