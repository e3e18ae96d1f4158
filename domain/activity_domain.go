package domain

var (
	MessageSuccessGetLogs = "activity logs retrieved successfully"
	MessageFailedGetLogs  = "failed to retrieve activity logs"
)

type LogEntryResponse struct {
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
}
