package dto

type SendRequest struct {
	To        string `json:"to"`
	Message   string `json:"message"`
	MessageID string `json:"messageID,omitempty"`
}

type QueuedMessage struct {
	MessageId string `json:"messageId"`
	Status    string `json:"status"`
}

type BulkMessage struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// BulkRequest keys contain spaces; they are part of the wire contract and
// must stay verbatim.
type BulkRequest struct {
	Name     string        `json:"Bulk Name"`
	Id       string        `json:"Bulk ID"`
	Messages []BulkMessage `json:"Bulk Messages"`
}

type BulkReceipt struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	BulkId  string `json:"bulkId"`
}
