package dto

type ApiKeyLookupRequest struct {
	StudentId string `json:"student_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

type ApiKeyData struct {
	StudentId string `json:"student_id"`
	Name      string `json:"name"`
	ApiKey    string `json:"api_key"`
}

type ApiKeyLookupResponse struct {
	Success bool       `json:"success"`
	Data    ApiKeyData `json:"data"`
}
