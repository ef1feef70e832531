package dao

import (
	"sync"
	"testing"

	"github.com/quansoft/sms-gateway/model"
	"github.com/stretchr/testify/require"
)

const (
	PHONE  = "+15551234567"
	PHONE2 = "+15557654321"
	TEXT   = "Hello World!"
	TEXT2  = "Hello Earth!"
)

func queuedMessage(id, phone string, ts int64) model.Message {
	return model.Message{
		Id:        id,
		Recipient: phone,
		Content:   TEXT,
		Status:    model.StatusQueued,
		Timestamp: ts,
	}
}

func TestMessageDao_Save(t *testing.T) {
	db := createDB(t)
	msgDao := NewMessageDao(db)

	err := msgDao.Save(queuedMessage("m1", PHONE, 100))

	require.NoError(t, err)

	msg, err := msgDao.GetOneById("m1")
	require.NoError(t, err)
	require.Equal(t, PHONE, msg.Recipient)
	require.Equal(t, model.StatusQueued, msg.Status)
}

func TestMessageDao_SaveReplacesSameId(t *testing.T) {
	db := createDB(t)
	msgDao := NewMessageDao(db)

	require.NoError(t, msgDao.Save(queuedMessage("m1", PHONE, 100)))

	replacement := queuedMessage("m1", PHONE2, 200)
	replacement.Content = TEXT2
	require.NoError(t, msgDao.Save(replacement))

	all, err := msgDao.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, PHONE2, all[0].Recipient)
	require.Equal(t, TEXT2, all[0].Content)
}

func TestMessageDao_UpdateStatus(t *testing.T) {
	db := createDB(t)
	msgDao := NewMessageDao(db)

	require.NoError(t, msgDao.Save(queuedMessage("m1", PHONE, 100)))

	err := msgDao.UpdateStatus("m1", model.StatusSending)

	require.NoError(t, err)

	msg, err := msgDao.GetOneById("m1")
	require.NoError(t, err)
	require.Equal(t, model.StatusSending, msg.Status)
}

func TestMessageDao_UpdateStatusMissingIdIsNoop(t *testing.T) {
	db := createDB(t)
	msgDao := NewMessageDao(db)

	err := msgDao.UpdateStatus("nope", model.StatusSent)

	require.NoError(t, err)
}

func TestMessageDao_GetQueuedOldestFirst(t *testing.T) {
	db := createDB(t)
	msgDao := NewMessageDao(db)

	require.NoError(t, msgDao.Save(queuedMessage("m3", PHONE, 300)))
	require.NoError(t, msgDao.Save(queuedMessage("m1", PHONE, 100)))
	require.NoError(t, msgDao.Save(queuedMessage("m2", PHONE, 200)))

	sent := queuedMessage("m4", PHONE, 50)
	sent.Status = model.StatusSent
	require.NoError(t, msgDao.Save(sent))

	queued, err := msgDao.GetQueued()

	require.NoError(t, err)
	require.Len(t, queued, 3)
	for i := 1; i < len(queued); i++ {
		require.LessOrEqual(t, queued[i-1].Timestamp, queued[i].Timestamp)
	}
	require.Equal(t, "m1", queued[0].Id)
	require.Equal(t, "m3", queued[2].Id)
}

func TestMessageDao_GetQueuedEmpty(t *testing.T) {
	db := createDB(t)
	msgDao := NewMessageDao(db)

	queued, err := msgDao.GetQueued()

	require.NoError(t, err)
	require.Empty(t, queued)
}

func TestMessageDao_GetAllNewestFirst(t *testing.T) {
	db := createDB(t)
	msgDao := NewMessageDao(db)

	require.NoError(t, msgDao.Save(queuedMessage("m1", PHONE, 100)))
	require.NoError(t, msgDao.Save(queuedMessage("m2", PHONE, 300)))
	require.NoError(t, msgDao.Save(queuedMessage("m3", PHONE, 200)))

	all, err := msgDao.GetAll()

	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "m2", all[0].Id)
	require.Equal(t, "m1", all[2].Id)
}

func TestMessageDao_SaveAll(t *testing.T) {
	db := createDB(t)
	msgDao := NewMessageDao(db)

	err := msgDao.SaveAll([]model.Message{
		queuedMessage("m1", PHONE, 100),
		queuedMessage("m2", PHONE2, 200),
	})

	require.NoError(t, err)

	all, err := msgDao.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestMessageDao_DeleteById(t *testing.T) {
	db := createDB(t)
	msgDao := NewMessageDao(db)

	require.NoError(t, msgDao.Save(queuedMessage("m1", PHONE, 100)))

	require.NoError(t, msgDao.DeleteById("m1"))
	//deleting again is a no-op
	require.NoError(t, msgDao.DeleteById("m1"))

	all, err := msgDao.GetAll()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestMessageDao_ConcurrentStatusUpdates(t *testing.T) {
	db := createDB(t)
	msgDao := NewMessageDao(db)

	require.NoError(t, msgDao.Save(queuedMessage("m1", PHONE, 100)))

	var wg sync.WaitGroup
	for _, status := range []string{model.StatusSent, model.StatusFailed} {
		wg.Add(1)
		go func(status string) {
			defer wg.Done()
			require.NoError(t, msgDao.UpdateStatus("m1", status))
		}(status)
	}
	wg.Wait()

	msg, err := msgDao.GetOneById("m1")
	require.NoError(t, err)
	require.Contains(t, []string{model.StatusSent, model.StatusFailed}, msg.Status)
}

func TestMessageDao_DeleteByCampaign(t *testing.T) {
	db := createDB(t)
	msgDao := NewMessageDao(db)

	inCampaign := queuedMessage("m1", PHONE, 100)
	inCampaign.CampaignId = "c1"
	require.NoError(t, msgDao.Save(inCampaign))
	require.NoError(t, msgDao.Save(queuedMessage("m2", PHONE2, 200)))

	require.NoError(t, msgDao.DeleteByCampaign("c1"))

	all, err := msgDao.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "m2", all[0].Id)
}
