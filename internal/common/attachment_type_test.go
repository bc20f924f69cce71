package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachmentCategory_String(t *testing.T) {
	assert.Equal(t, "image", AttachmentImage.String())
	assert.Equal(t, "video", AttachmentVideo.String())
	assert.Equal(t, "audio", AttachmentAudio.String())
	assert.Equal(t, "document", AttachmentDocument.String())
	assert.Equal(t, "other", AttachmentOther.String())
}

func TestAttachmentCategory_MaxBytes(t *testing.T) {
	assert.Equal(t, int64(10<<20), AttachmentImage.MaxBytes())
	assert.Equal(t, int64(20<<20), AttachmentDocument.MaxBytes())
	assert.Equal(t, int64(50<<20), AttachmentAudio.MaxBytes())
	assert.Equal(t, int64(100<<20), AttachmentVideo.MaxBytes())
	assert.Equal(t, int64(50<<20), AttachmentOther.MaxBytes())
}

func TestDetectAttachmentCategory_Images(t *testing.T) {
	imageTypes := []string{
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/webp",
		"image/bmp",
	}

	for _, mimeType := range imageTypes {
		result := DetectAttachmentCategory(mimeType)
		assert.Equal(t, AttachmentImage, result, "Failed for MIME type: %s", mimeType)
	}
}

func TestDetectAttachmentCategory_Videos(t *testing.T) {
	videoTypes := []string{
		"video/mp4",
		"video/mpeg",
		"video/quicktime",
		"video/webm",
	}

	for _, mimeType := range videoTypes {
		result := DetectAttachmentCategory(mimeType)
		assert.Equal(t, AttachmentVideo, result, "Failed for MIME type: %s", mimeType)
	}
}

func TestDetectAttachmentCategory_Audio(t *testing.T) {
	audioTypes := []string{
		"audio/mpeg",
		"audio/mp3",
		"audio/wav",
		"audio/ogg",
	}

	for _, mimeType := range audioTypes {
		result := DetectAttachmentCategory(mimeType)
		assert.Equal(t, AttachmentAudio, result, "Failed for MIME type: %s", mimeType)
	}
}

func TestDetectAttachmentCategory_Documents(t *testing.T) {
	documentTypes := []string{
		"application/pdf",
		"text/plain",
		"text/csv",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}

	for _, mimeType := range documentTypes {
		result := DetectAttachmentCategory(mimeType)
		assert.Equal(t, AttachmentDocument, result, "Failed for MIME type: %s", mimeType)
	}
}

func TestDetectAttachmentCategory_OtherFallback(t *testing.T) {
	unknownTypes := []string{
		"application/zip",
		"application/x-rar-compressed",
		"application/octet-stream",
		"unknown/type",
		"",
	}

	for _, mimeType := range unknownTypes {
		result := DetectAttachmentCategory(mimeType)
		assert.Equal(t, AttachmentOther, result, "Failed for MIME type: %s", mimeType)
	}
}

func TestDetectAttachmentCategory_CaseInsensitive(t *testing.T) {
	edgeCases := []struct {
		input    string
		expected AttachmentCategory
	}{
		{"IMAGE/JPEG", AttachmentImage},
		{"Video/MP4", AttachmentVideo},
		{"Audio/WAV", AttachmentAudio},
		{"Application/PDF", AttachmentDocument},
	}

	for _, testCase := range edgeCases {
		result := DetectAttachmentCategory(testCase.input)
		assert.Equal(t, testCase.expected, result, "Failed for input: %s", testCase.input)
	}
}
