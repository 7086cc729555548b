package constants

// Uploaded files
const (
	UploadFieldName    = "file"     // multipart field carrying the image
	UploadPublicPrefix = "/uploads" // public URL prefix the upload directory is served under
)
