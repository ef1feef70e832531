package dao

import (
	"errors"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/q"
	"github.com/quansoft/sms-gateway/model"
)

type CampaignDao interface {
	//Create stores a campaign. An existing id is kept untouched (no error),
	//so a bulk request may be retried without a prior existence check.
	Create(c model.Campaign) error
	//CreateWithMessages stores a campaign (idempotently) together with its
	//messages in a single write transaction
	CreateWithMessages(c model.Campaign, msgs []model.Message) error
	//GetOneById returns a campaign by id
	GetOneById(id string) (model.Campaign, error)
	//GetAll returns all campaigns, newest first
	GetAll() ([]model.Campaign, error)
	//Delete removes a campaign and cascades to its messages atomically
	Delete(id string) error
}

func NewCampaignDao(db Db) CampaignDao {
	return &campaignDao{db: db}
}

type campaignDao struct {
	db Db
}

// storm has no native insert-or-ignore, so the existence check runs inside
// the same write transaction as the insert.
func insertIgnore(tx storm.Node, c model.Campaign) error {
	var existing model.Campaign
	err := tx.One("Id", c.Id, &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storm.ErrNotFound) {
		return err
	}
	return tx.Save(&c)
}

func (d campaignDao) Create(c model.Campaign) error {
	tx, err := d.db.Begin(true)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertIgnore(tx, c); err != nil {
		return err
	}

	return tx.Commit()
}

func (d campaignDao) CreateWithMessages(c model.Campaign, msgs []model.Message) error {
	tx, err := d.db.Begin(true)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertIgnore(tx, c); err != nil {
		return err
	}
	for i := range msgs {
		if err := tx.Save(&msgs[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d campaignDao) GetOneById(id string) (c model.Campaign, err error) {
	err = d.db.One("Id", id, &c)
	return
}

func (d campaignDao) GetAll() ([]model.Campaign, error) {
	campaigns := []model.Campaign{}
	err := d.db.AllByIndex("Timestamp", &campaigns, storm.Reverse())
	return campaigns, err
}

func (d campaignDao) Delete(id string) error {
	tx, err := d.db.Begin(true)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var c model.Campaign
	err = tx.One("Id", id, &c)
	if errors.Is(err, storm.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	//bbolt has no foreign keys, so the cascade lives here, inside the
	//same transaction as the campaign removal
	err = tx.Select(q.Eq("CampaignId", id)).Delete(&model.Message{})
	if err != nil && !errors.Is(err, storm.ErrNotFound) {
		return err
	}
	if err := tx.DeleteStruct(&c); err != nil {
		return err
	}

	return tx.Commit()
}
