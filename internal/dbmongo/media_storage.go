package dbmongo

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"GoChatter/internal/common"
)

// MediaStorage wraps the GridFS bucket. Files are stored under a
// "{category}s/{filename}" object name, which is exactly the path segment
// of their download URL.
type MediaStorage struct {
	bucket *gridfs.Bucket
}

func NewMediaStorage(mongoClient *MongoClient) *MediaStorage {
	return &MediaStorage{
		bucket: mongoClient.GridFS,
	}
}

// FileMetadata is what the uploader knows about a file at save time; it is
// kept in the GridFS metadata document.
type FileMetadata struct {
	Category     string
	MimeType     string
	UploadedBy   string
	OriginalName string
}

// StoredFile describes a file already in the bucket.
type StoredFile struct {
	Name         string    `json:"name"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mime_type"`
	Category     string    `json:"category"`
	UploadedBy   string    `json:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// CategoryStats aggregates one category directory.
type CategoryStats struct {
	Count          int     `json:"count"`
	TotalSizeBytes int64   `json:"total_size_bytes"`
	TotalSizeMB    float64 `json:"total_size_mb"`
}

// StorageStats is the bucket-wide aggregate, keyed by category directory.
type StorageStats struct {
	Categories  map[string]CategoryStats `json:"categories"`
	TotalFiles  int                      `json:"total_files"`
	TotalSizeMB float64                  `json:"total_size_mb"`
}

// bucketFile is the fs.files document shape we read back.
type bucketFile struct {
	ID       primitive.ObjectID `bson:"_id"`
	Length   int64              `bson:"length"`
	Filename string             `bson:"filename"`
}

type storedMetadata struct {
	Category     string `bson:"category"`
	MimeType     string `bson:"mime_type"`
	UploadedBy   string `bson:"uploaded_by"`
	OriginalName string `bson:"original_name"`
}

// SaveFile streams content into the bucket under name and returns the byte
// count written. A failed copy aborts the stream so no orphan chunks stay
// behind.
func (ms *MediaStorage) SaveFile(ctx context.Context, name string, meta FileMetadata, content io.Reader) (int64, error) {
	metadata := bson.M{
		"category":      meta.Category,
		"mime_type":     meta.MimeType,
		"uploaded_by":   meta.UploadedBy,
		"original_name": meta.OriginalName,
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.bucket.OpenUploadStream(name, opts)
	if err != nil {
		return 0, fmt.Errorf("upload failed: %w", err)
	}

	size, err := io.Copy(stream, content)
	if err != nil {
		_ = stream.Abort()
		return 0, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return 0, fmt.Errorf("upload failed: %w", err)
	}

	return size, nil
}

// OpenFile returns a reader over the named file plus its description. The
// caller owns the reader and must close it.
func (ms *MediaStorage) OpenFile(ctx context.Context, name string) (io.ReadCloser, *StoredFile, error) {
	stream, err := ms.bucket.OpenDownloadStreamByName(name)
	if err != nil {
		if err == gridfs.ErrFileNotFound {
			return nil, nil, common.NotFoundError("File not found")
		}
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	info := stream.GetFile()
	var meta storedMetadata
	if info.Metadata != nil {
		_ = bson.Unmarshal(info.Metadata, &meta)
	}

	return stream, &StoredFile{
		Name:         info.Name,
		OriginalName: meta.OriginalName,
		Size:         info.Length,
		MimeType:     meta.MimeType,
		Category:     meta.Category,
		UploadedBy:   meta.UploadedBy,
		UploadedAt:   info.UploadDate,
	}, nil
}

// DeleteFile removes the named file and its chunks.
func (ms *MediaStorage) DeleteFile(ctx context.Context, name string) error {
	cursor, err := ms.bucket.Find(bson.M{"filename": name}, options.GridFSFind().SetLimit(1))
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}
		return common.NotFoundError("File not found")
	}

	var doc bucketFile
	if err := cursor.Decode(&doc); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	if err := ms.bucket.Delete(doc.ID); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// Stats walks the bucket and aggregates per category directory.
func (ms *MediaStorage) Stats(ctx context.Context) (*StorageStats, error) {
	cursor, err := ms.bucket.Find(bson.M{})
	if err != nil {
		return nil, fmt.Errorf("lookup failed: %w", err)
	}
	defer cursor.Close(ctx)

	stats := &StorageStats{Categories: map[string]CategoryStats{}}
	for cursor.Next(ctx) {
		var doc bucketFile
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode failed: %w", err)
		}

		dir := dirOf(doc.Filename)

		cs := stats.Categories[dir]
		cs.Count++
		cs.TotalSizeBytes += doc.Length
		stats.Categories[dir] = cs
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("lookup failed: %w", err)
	}

	for dir, cs := range stats.Categories {
		cs.TotalSizeMB = roundMB(cs.TotalSizeBytes)
		stats.Categories[dir] = cs
		stats.TotalFiles += cs.Count
		stats.TotalSizeMB += cs.TotalSizeMB
	}
	stats.TotalSizeMB = math.Round(stats.TotalSizeMB*100) / 100

	return stats, nil
}

// dirOf groups a stored file under its category directory, the segment
// before the first slash. Legacy flat names fall under "others".
func dirOf(filename string) string {
	if idx := strings.IndexByte(filename, '/'); idx > 0 {
		return filename[:idx]
	}
	return "others"
}

func roundMB(bytes int64) float64 {
	return math.Round(float64(bytes)/(1<<20)*100) / 100
}
