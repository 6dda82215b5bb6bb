package dto

type MediaUploadDTO struct {
	FileKey string `json:"file_key"`
	URL     string `json:"url"`
}
