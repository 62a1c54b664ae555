package response_models

type MemoryResponse struct {
	ID        string `json:"id"`
	HistoryID string `json:"historyId"`
	Day       int    `json:"day"`
	Caption   string `json:"caption"`
	FileName  string `json:"fileName"`
	MimeType  string `json:"mimeType"`
	DriveLink string `json:"driveLink"`
	CreatedAt string `json:"createdAt"`
}
