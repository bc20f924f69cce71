package dbmongo

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoChatter/internal/common"
	"GoChatter/internal/config"
)

// newTestClient connects to the MongoDB named by MONGO_URI. Tests that need a
// live server skip when the variable is unset so the suite stays runnable
// without docker-compose.
func newTestClient(t *testing.T) *MongoClient {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping MongoDB integration test")
	}

	cfg := &config.Config{
		MongoDB: config.MongoConfig{
			URI:      uri,
			Database: "gochatter_test",
		},
	}

	client, err := NewMongoConnection(cfg)
	require.NoError(t, err, "Failed to connect to MongoDB at %s", uri)
	t.Cleanup(func() {
		client.Close(context.Background())
	})

	return client
}

func TestMongoConnection_Integration(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	assert.NoError(t, client.Client.Ping(ctx, nil))
	assert.NotNil(t, client.GridFS)
	assert.NotNil(t, client.Database)
}

func TestMediaStorage_Integration(t *testing.T) {
	ctx := context.Background()
	storage := NewMediaStorage(newTestClient(t))

	t.Run("save_and_open_file", func(t *testing.T) {
		content := "fake image bytes for the GridFS roundtrip"
		meta := FileMetadata{
			Category:     "image",
			MimeType:     "image/jpeg",
			UploadedBy:   "user123",
			OriginalName: "photo.jpg",
		}

		size, err := storage.SaveFile(ctx, "images/a1b2c3d4e5f6_photo.jpg", meta, strings.NewReader(content))
		require.NoError(t, err)
		assert.Equal(t, int64(len(content)), size)
		defer storage.DeleteFile(ctx, "images/a1b2c3d4e5f6_photo.jpg")

		reader, stored, err := storage.OpenFile(ctx, "images/a1b2c3d4e5f6_photo.jpg")
		require.NoError(t, err)
		defer reader.Close()

		assert.Equal(t, "images/a1b2c3d4e5f6_photo.jpg", stored.Name)
		assert.Equal(t, "photo.jpg", stored.OriginalName)
		assert.Equal(t, "image/jpeg", stored.MimeType)
		assert.Equal(t, "image", stored.Category)
		assert.Equal(t, "user123", stored.UploadedBy)
		assert.Equal(t, int64(len(content)), stored.Size)
		assert.False(t, stored.UploadedAt.IsZero())

		roundtrip, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, content, string(roundtrip))
	})

	t.Run("delete_file", func(t *testing.T) {
		meta := FileMetadata{Category: "document", MimeType: "text/plain", UploadedBy: "user123", OriginalName: "delete-me.txt"}
		_, err := storage.SaveFile(ctx, "documents/feedfacecafe_delete-me.txt", meta, strings.NewReader("to be removed"))
		require.NoError(t, err)

		require.NoError(t, storage.DeleteFile(ctx, "documents/feedfacecafe_delete-me.txt"))

		_, _, err = storage.OpenFile(ctx, "documents/feedfacecafe_delete-me.txt")
		assert.Equal(t, common.CodeNotFound, common.CodeOf(err))
	})

	t.Run("open_missing_file", func(t *testing.T) {
		_, _, err := storage.OpenFile(ctx, "images/000000000000_missing.jpg")
		require.Error(t, err)
		assert.Equal(t, common.CodeNotFound, common.CodeOf(err))
	})

	t.Run("delete_missing_file", func(t *testing.T) {
		err := storage.DeleteFile(ctx, "images/000000000000_missing.jpg")
		require.Error(t, err)
		assert.Equal(t, common.CodeNotFound, common.CodeOf(err))
	})

	t.Run("stats_reflect_saved_files", func(t *testing.T) {
		names := []string{
			"images/0123456789ab_one.png",
			"images/0123456789ac_two.png",
			"audios/0123456789ad_clip.mp3",
		}
		metas := []FileMetadata{
			{Category: "image", MimeType: "image/png", UploadedBy: "user123", OriginalName: "one.png"},
			{Category: "image", MimeType: "image/png", UploadedBy: "user123", OriginalName: "two.png"},
			{Category: "audio", MimeType: "audio/mpeg", UploadedBy: "user123", OriginalName: "clip.mp3"},
		}
		for i, name := range names {
			_, err := storage.SaveFile(ctx, name, metas[i], strings.NewReader("payload"))
			require.NoError(t, err)
			defer storage.DeleteFile(ctx, name)
		}

		stats, err := storage.Stats(ctx)
		require.NoError(t, err)

		// The test database may hold files from other runs, so assert floors.
		assert.GreaterOrEqual(t, stats.TotalFiles, 3)
		assert.GreaterOrEqual(t, stats.Categories["images"].Count, 2)
		assert.GreaterOrEqual(t, stats.Categories["audios"].Count, 1)
		assert.Greater(t, stats.Categories["images"].TotalSizeBytes, int64(0))
	})
}
