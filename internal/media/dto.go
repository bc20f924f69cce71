package media

// FileUploadResponse is the body returned after a successful upload. The
// file_url path is ready to feed into a message attachment.
type FileUploadResponse struct {
	FileURL      string  `json:"file_url"`
	FileName     string  `json:"file_name"`
	FileType     string  `json:"file_type"`
	FileSize     int64   `json:"file_size"`
	FileCategory string  `json:"file_category"`
	ThumbnailURL *string `json:"thumbnail_url"`
}
