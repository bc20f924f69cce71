package media

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoChatter/internal/common"
)

func TestClassifyUpload(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		mimeType     string
		wantCategory common.AttachmentCategory
		errorMsg     string
	}{
		{
			name:         "jpeg image",
			filename:     "photo.jpg",
			mimeType:     "image/jpeg",
			wantCategory: common.AttachmentImage,
		},
		{
			name:         "uppercase extension is normalized",
			filename:     "PHOTO.JPG",
			mimeType:     "image/jpeg",
			wantCategory: common.AttachmentImage,
		},
		{
			name:         "pdf document",
			filename:     "report.pdf",
			mimeType:     "application/pdf",
			wantCategory: common.AttachmentDocument,
		},
		{
			name:         "mp3 audio",
			filename:     "song.mp3",
			mimeType:     "audio/mpeg",
			wantCategory: common.AttachmentAudio,
		},
		{
			name:         "mp4 video",
			filename:     "clip.mp4",
			mimeType:     "video/mp4",
			wantCategory: common.AttachmentVideo,
		},
		{
			name:         "zip archive",
			filename:     "bundle.zip",
			mimeType:     "application/zip",
			wantCategory: common.AttachmentOther,
		},
		{
			name:         "webm resolves to audio",
			filename:     "voice.webm",
			mimeType:     "audio/webm",
			wantCategory: common.AttachmentAudio,
		},
		{
			name:     "webm with video mime is rejected",
			filename: "clip.webm",
			mimeType: "video/webm",
			errorMsg: "MIME type video/webm not allowed for audio files",
		},
		{
			name:     "unknown extension",
			filename: "tool.exe",
			mimeType: "application/octet-stream",
			errorMsg: "File extension .exe not allowed",
		},
		{
			name:     "no extension",
			filename: "README",
			mimeType: "text/plain",
			errorMsg: "not allowed",
		},
		{
			name:     "mime does not match extension category",
			filename: "photo.jpg",
			mimeType: "application/pdf",
			errorMsg: "MIME type application/pdf not allowed for image files",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			category, err := classifyUpload(tc.filename, tc.mimeType)
			if tc.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
				assert.Equal(t, common.CodeInvalidArgument, common.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCategory, category)
		})
	}
}

func TestUniqueName(t *testing.T) {
	prefixPattern := regexp.MustCompile(`^[0-9a-f]{12}_`)

	t.Run("keeps stem and extension behind a random prefix", func(t *testing.T) {
		name := uniqueName("report.pdf")
		assert.Regexp(t, prefixPattern, name)
		assert.True(t, strings.HasSuffix(name, "_report.pdf"), "got %s", name)
	})

	t.Run("lowercases the extension but not the stem", func(t *testing.T) {
		name := uniqueName("PHOTO.JPG")
		assert.True(t, strings.HasSuffix(name, "_PHOTO.jpg"), "got %s", name)
	})

	t.Run("drops unsafe characters from the stem", func(t *testing.T) {
		name := uniqueName("we💣ird$name!.png")
		assert.True(t, strings.HasSuffix(name, "_weirdname.png"), "got %s", name)
	})

	t.Run("keeps dots dashes underscores and spaces", func(t *testing.T) {
		name := uniqueName("annual report_v2.1-final copy.pdf")
		assert.True(t, strings.HasSuffix(name, "_annual report_v2.1-final copy.pdf"), "got %s", name)
	})

	t.Run("truncates long stems to 50 characters", func(t *testing.T) {
		name := uniqueName(strings.Repeat("a", 80) + ".txt")
		assert.True(t, strings.HasSuffix(name, "_"+strings.Repeat("a", 50)+".txt"), "got %s", name)
	})

	t.Run("two uploads of the same file get different names", func(t *testing.T) {
		assert.NotEqual(t, uniqueName("photo.jpg"), uniqueName("photo.jpg"))
	})
}

func TestCategoryDir(t *testing.T) {
	assert.Equal(t, "images", categoryDir(common.AttachmentImage))
	assert.Equal(t, "documents", categoryDir(common.AttachmentDocument))
	assert.Equal(t, "audios", categoryDir(common.AttachmentAudio))
	assert.Equal(t, "videos", categoryDir(common.AttachmentVideo))
	assert.Equal(t, "others", categoryDir(common.AttachmentOther))
}

func TestOversizeError(t *testing.T) {
	err := oversizeError(common.AttachmentImage)
	assert.Equal(t, common.CodePayloadTooLarge, common.CodeOf(err))
	assert.Equal(t, "File size exceeds maximum 10MB for image files", err.Error())

	assert.Equal(t, "File size exceeds maximum 100MB for video files", oversizeError(common.AttachmentVideo).Error())
}
