package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"todo/internal/slot"
	"todo/internal/task"
)

// Load reads the snapshot stored under key. An absent key, a read error or
// data that does not decode as a task array all yield an empty collection.
func Load(ctx context.Context, s slot.Slot, key string, log logrus.FieldLogger) []task.Task {
	data, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, slot.ErrNotFound) {
			log.WithField("key", key).Debug("no snapshot, starting empty")
		} else {
			log.WithError(err).WithField("key", key).Debug("snapshot unreadable, starting empty")
		}
		return []task.Task{}
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		log.WithError(err).WithField("key", key).Debug("snapshot invalid, starting empty")
		return []task.Task{}
	}
	if tasks == nil {
		return []task.Task{}
	}

	log.WithFields(logrus.Fields{"key": key, "count": len(tasks)}).Debug("snapshot loaded")
	return tasks
}

// Save writes the whole collection under key, replacing prior contents.
// Persistence is best-effort: failures are logged and dropped.
func Save(ctx context.Context, s slot.Slot, key string, tasks []task.Task, log logrus.FieldLogger) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		log.WithError(err).Debug("snapshot encode failed")
		return
	}
	if err := s.Set(ctx, key, data); err != nil {
		log.WithError(err).WithField("key", key).Debug("snapshot write failed")
		return
	}
	log.WithFields(logrus.Fields{"key": key, "count": len(tasks)}).Debug("snapshot saved")
}
