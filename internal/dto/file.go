package dto

// UploadFileResponse is returned by POST /file/upload.
type UploadFileResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
}
