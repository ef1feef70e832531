package dao

import (
	"errors"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/q"
	"github.com/quansoft/sms-gateway/model"
)

type MessageDao interface {
	//Save inserts a message or replaces the one with the same id
	Save(msg model.Message) error
	//SaveAll inserts all messages in a single write transaction
	SaveAll(msgs []model.Message) error
	//UpdateStatus sets the status of the message with the given id.
	//A missing id is not an error: a status report may race with deletion.
	UpdateStatus(id, status string) error
	//GetOneById returns a message by id
	GetOneById(id string) (model.Message, error)
	//GetQueued returns all queued messages, oldest first
	GetQueued() ([]model.Message, error)
	//GetAll returns all messages, newest first
	GetAll() ([]model.Message, error)
	//DeleteById removes a single message
	DeleteById(id string) error
	//DeleteByCampaign removes all messages linked to the given campaign
	DeleteByCampaign(campaignId string) error
}

func NewMessageDao(db Db) MessageDao {
	return &messageDao{db: db}
}

type messageDao struct {
	db Db
}

func (d messageDao) Save(msg model.Message) error {
	return d.db.Save(&msg)
}

func (d messageDao) SaveAll(msgs []model.Message) error {
	tx, err := d.db.Begin(true)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range msgs {
		if err := tx.Save(&msgs[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d messageDao) UpdateStatus(id, status string) error {
	err := d.db.UpdateField(&model.Message{Id: id}, "Status", status)
	if errors.Is(err, storm.ErrNotFound) {
		return nil
	}
	return err
}

func (d messageDao) GetOneById(id string) (msg model.Message, err error) {
	err = d.db.One("Id", id, &msg)
	return
}

func (d messageDao) GetQueued() ([]model.Message, error) {
	msgs := []model.Message{}
	err := d.db.Select(q.Eq("Status", model.StatusQueued)).OrderBy("Timestamp").Find(&msgs)
	if errors.Is(err, storm.ErrNotFound) {
		return msgs, nil
	}
	return msgs, err
}

func (d messageDao) GetAll() ([]model.Message, error) {
	msgs := []model.Message{}
	err := d.db.AllByIndex("Timestamp", &msgs, storm.Reverse())
	return msgs, err
}

func (d messageDao) DeleteById(id string) error {
	//fetch first so index entries are removed with their actual values
	var msg model.Message
	err := d.db.One("Id", id, &msg)
	if errors.Is(err, storm.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return d.db.DeleteStruct(&msg)
}

func (d messageDao) DeleteByCampaign(campaignId string) error {
	err := d.db.Select(q.Eq("CampaignId", campaignId)).Delete(&model.Message{})
	if errors.Is(err, storm.ErrNotFound) {
		return nil
	}
	return err
}
