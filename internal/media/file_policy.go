package media

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"GoChatter/internal/common"
)

// classifyOrder fixes the lookup order for extensions claimed by more than
// one category; .webm resolves to audio because audio comes first.
var classifyOrder = []common.AttachmentCategory{
	common.AttachmentImage,
	common.AttachmentDocument,
	common.AttachmentAudio,
	common.AttachmentVideo,
	common.AttachmentOther,
}

var allowedExtensions = map[common.AttachmentCategory][]string{
	common.AttachmentImage:    {".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"},
	common.AttachmentDocument: {".pdf", ".doc", ".docx", ".xls", ".xlsx", ".txt", ".csv"},
	common.AttachmentAudio:    {".mp3", ".wav", ".ogg", ".webm"},
	common.AttachmentVideo:    {".mp4", ".mpeg", ".mov", ".avi", ".webm"},
	common.AttachmentOther:    {".zip", ".rar", ".7z"},
}

var allowedMimeTypes = map[common.AttachmentCategory][]string{
	common.AttachmentImage: {
		"image/jpeg", "image/png", "image/gif", "image/webp", "image/bmp",
	},
	common.AttachmentDocument: {
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"text/plain",
		"text/csv",
	},
	common.AttachmentAudio: {
		"audio/mpeg", "audio/mp3", "audio/wav", "audio/ogg", "audio/webm",
	},
	common.AttachmentVideo: {
		"video/mp4", "video/mpeg", "video/quicktime", "video/x-msvideo", "video/webm",
	},
	common.AttachmentOther: {
		"application/zip",
		"application/x-rar-compressed",
		"application/x-7z-compressed",
	},
}

// classifyUpload resolves the category from the file extension, then checks
// that the declared MIME type is allowed for it.
func classifyUpload(filename, mimeType string) (common.AttachmentCategory, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var category common.AttachmentCategory
	for _, cat := range classifyOrder {
		if slices.Contains(allowedExtensions[cat], ext) {
			category = cat
			break
		}
	}
	if category == "" {
		return "", common.InvalidArgument(fmt.Sprintf("File extension %s not allowed", ext))
	}

	if !slices.Contains(allowedMimeTypes[category], mimeType) {
		return "", common.InvalidArgument(fmt.Sprintf("MIME type %s not allowed for %s files", mimeType, category))
	}

	return category, nil
}

// uniqueName prefixes a short random id so concurrent uploads of the same
// file never collide. The original stem survives, sanitized and truncated,
// to keep stored names readable.
func uniqueName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	uniqueID := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]

	stem := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	if runes := []rune(stem); len(runes) > 50 {
		stem = string(runes[:50])
	}
	safe := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("._- ", r) {
			return r
		}
		return -1
	}, stem)

	return uniqueID + "_" + safe + ext
}

// categoryDir is the path segment files of a category live under, e.g.
// images/ or documents/.
func categoryDir(category common.AttachmentCategory) string {
	return category.String() + "s"
}

func oversizeError(category common.AttachmentCategory) error {
	return common.PayloadTooLarge(fmt.Sprintf("File size exceeds maximum %dMB for %s files",
		category.MaxBytes()>>20, category))
}
