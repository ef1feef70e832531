package model

type Campaign struct {
	Id        string `storm:"id" json:"id"`
	Name      string `json:"name"`
	Timestamp int64  `storm:"index" json:"timestamp"`
}
