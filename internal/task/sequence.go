package task

import "time"

// Sequence issues task ids. Ids look like millisecond timestamps, which keeps
// them compatible with snapshots written by earlier versions, but they are
// strictly increasing so two adds in the same millisecond never collide.
type Sequence struct {
	last int64
}

// Next returns an id greater than every id in tasks and every id this
// sequence has issued before.
func (s *Sequence) Next(tasks []Task, now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	for _, t := range tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	s.last = id
	return id
}
