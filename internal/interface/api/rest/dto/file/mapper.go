package file

import (
	domain "storage-dashboard/internal/domain/file"
)

func ToResponseFile(r domain.Record) File {
	var f = File{
		ID:        int64(r.ID),
		Filename:  r.Filename,
		MimeType:  r.MimeType,
		FileSize:  r.FileSize,
		SizeLabel: domain.FormatSize(r.FileSize),
		TypeLabel: domain.TypeLabel(r.MimeType),
		Category:  string(domain.Classify(r.MimeType)),
		CreatedAt: r.CreatedAt,
	}

	return f
}

func ToResponseFiles(rs domain.Records) Files {
	fs := make(Files, len(rs))
	for idx, r := range rs {
		fs[idx] = ToResponseFile(*r)
	}

	return fs
}

func ToResponsePreview(r domain.Record, url string) Preview {
	mode := domain.PreviewModeFor(r.MimeType)
	if url == "" {
		mode = domain.PreviewUnavailable
	}

	return Preview{
		Available: mode != domain.PreviewUnavailable,
		Mode:      string(mode),
		URL:       url,
		MimeType:  r.MimeType,
		Filename:  r.Filename,
	}
}
