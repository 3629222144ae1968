package dto

// AskRequest is the body of POST /ask
type AskRequest struct {
	Query string `json:"query" validate:"required,notblank,max=1000"`
}

// AskResponse is the body returned by POST /ask
type AskResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

const StatusSuccess = "success"
