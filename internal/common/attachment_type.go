package common

import "strings"

// AttachmentCategory buckets uploads by MIME type; each category carries its
// own size cap.
type AttachmentCategory string

const (
	AttachmentImage    AttachmentCategory = "image"
	AttachmentVideo    AttachmentCategory = "video"
	AttachmentAudio    AttachmentCategory = "audio"
	AttachmentDocument AttachmentCategory = "document"
	AttachmentOther    AttachmentCategory = "other"
)

// String returns the string representation
func (ac AttachmentCategory) String() string {
	return string(ac)
}

// MaxBytes is the per-category upload cap.
func (ac AttachmentCategory) MaxBytes() int64 {
	switch ac {
	case AttachmentImage:
		return 10 << 20
	case AttachmentDocument:
		return 20 << 20
	case AttachmentAudio:
		return 50 << 20
	case AttachmentVideo:
		return 100 << 20
	default:
		return 50 << 20
	}
}

func DetectAttachmentCategory(mimeType string) AttachmentCategory {
	lower := strings.ToLower(mimeType)
	switch {
	case strings.HasPrefix(lower, "image/"):
		return AttachmentImage
	case strings.HasPrefix(lower, "video/"):
		return AttachmentVideo
	case strings.HasPrefix(lower, "audio/"):
		return AttachmentAudio
	case lower == "application/pdf",
		strings.HasPrefix(lower, "text/"),
		strings.Contains(lower, "msword"),
		strings.Contains(lower, "officedocument"),
		strings.Contains(lower, "spreadsheet"):
		return AttachmentDocument
	default:
		return AttachmentOther
	}
}
