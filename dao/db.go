package dao

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/index"
	"github.com/asdine/storm/v3/q"
	"github.com/quansoft/sms-gateway/model"
	bolt "go.etcd.io/bbolt"
)

type Db interface {
	Init(data interface{}) error
	One(fieldName string, value interface{}, to interface{}) error
	Save(data interface{}) error
	Update(data interface{}) error
	UpdateField(data interface{}, fieldName string, value interface{}) error
	DeleteStruct(data interface{}) error
	Select(matchers ...q.Matcher) storm.Query
	All(to interface{}, options ...func(*index.Options)) error
	AllByIndex(fieldName string, to interface{}, options ...func(*index.Options)) error
	Begin(writable bool) (storm.Node, error)
	Get(bucketName string, key interface{}, to interface{}) error
	Set(bucketName string, key interface{}, value interface{}) error
	Close() error
}

// Open opens (creating if needed) the bolt file backing the gateway and
// prepares buckets and indexes. The returned handle is owned by the caller
// and shared by injection; there is no process-wide instance.
func Open(dbFilePath string) (Db, error) {
	db, err := storm.Open(dbFilePath, storm.BoltOptions(0600, &bolt.Options{Timeout: 10 * time.Second}))
	if err != nil {
		return nil, err
	}

	for _, data := range []interface{}{&model.Message{}, &model.Campaign{}} {
		if err := db.Init(data); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}
