package model

const (
	//message lifecycle statuses
	StatusQueued    string = "queued"
	StatusSending          = "sending"
	StatusSent             = "sent"
	StatusDelivered        = "delivered"
	StatusFailed           = "failed"
)

type Message struct {
	Id         string `storm:"id" json:"id"`
	Recipient  string `json:"recipient"`
	Content    string `json:"content"`
	Status     string `storm:"index" json:"status"`
	Timestamp  int64  `storm:"index" json:"timestamp"`
	CampaignId string `storm:"index" json:"bulkId,omitempty"`
}
