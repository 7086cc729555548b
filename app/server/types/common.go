package types

type ErrorMessage struct {
	Message string `json:"message"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
