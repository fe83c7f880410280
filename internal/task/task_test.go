package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.UnixMilli(1700000000000)

func sample() []Task {
	return []Task{
		{ID: 3, Text: "Walk the dog", Completed: false, CreatedAt: 3},
		{ID: 2, Text: "Buy milk", Completed: true, CreatedAt: 2},
		{ID: 1, Text: "Call MOM", Completed: false, CreatedAt: 1},
	}
}

func TestAdd_WhitespaceIsNoop(t *testing.T) {
	for _, text := range []string{"", " ", "\t", "\n", " \t\r\n "} {
		tasks := sample()
		got := Add(tasks, text, 99, now)
		assert.Equal(t, sample(), got, "text %q", text)
	}
}

func TestAdd_PrependsOpenTask(t *testing.T) {
	tasks := sample()
	got := Add(tasks, "  Buy eggs  ", 99, now)

	require.Len(t, got, len(tasks)+1)
	assert.Equal(t, Task{ID: 99, Text: "Buy eggs", Completed: false, CreatedAt: now.UnixMilli()}, got[0])
	assert.Equal(t, tasks, got[1:])
	assert.Equal(t, sample(), tasks, "input must not be modified")
}

func TestAdd_EmptyCollection(t *testing.T) {
	got := Add(nil, "Buy milk", 1, now)
	require.Len(t, got, 1)
	assert.Equal(t, "Buy milk", got[0].Text)
	assert.False(t, got[0].Completed)
	assert.Equal(t, now, got[0].Created())
}

func TestDelete_RoundTrip(t *testing.T) {
	tasks := sample()
	got := Delete(Add(tasks, "x", 42, now), 42)
	assert.Equal(t, tasks, got)
}

func TestDelete_UnknownID(t *testing.T) {
	got := Delete(sample(), 1234)
	assert.Equal(t, sample(), got)
}

func TestDelete_DoesNotModifyInput(t *testing.T) {
	tasks := sample()
	got := Delete(tasks, 2)

	assert.Equal(t, []Task{sample()[0], sample()[2]}, got)
	assert.Equal(t, sample(), tasks)
}

func TestEdit(t *testing.T) {
	tasks := sample()
	got := Edit(tasks, 2, "  Buy oat milk ")

	assert.Equal(t, "Buy oat milk", got[1].Text)
	assert.True(t, got[1].Completed, "edit keeps completion")
	assert.Equal(t, int64(2), got[1].CreatedAt, "edit keeps creation time")
	assert.Equal(t, "Buy milk", tasks[1].Text, "input must not be modified")
}

func TestEdit_Noops(t *testing.T) {
	assert.Equal(t, sample(), Edit(sample(), 2, "   "))
	assert.Equal(t, sample(), Edit(sample(), 77, "new text"))
}

func TestToggle(t *testing.T) {
	tasks := sample()

	once := Toggle(tasks, 3)
	assert.True(t, once[0].Completed)
	assert.False(t, tasks[0].Completed, "input must not be modified")

	twice := Toggle(once, 3)
	assert.Equal(t, tasks, twice)
}

func TestToggle_UnknownID(t *testing.T) {
	assert.Equal(t, sample(), Toggle(sample(), 5))
}

func TestFind(t *testing.T) {
	i, ok := Find(sample(), 1)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = Find(sample(), 9)
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

func TestScenario_BuyMilk(t *testing.T) {
	var seq Sequence

	var tasks []Task
	tasks = Add(tasks, "Buy milk", seq.Next(tasks, now), now)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Text)
	assert.False(t, tasks[0].Completed)

	tasks = Toggle(tasks, tasks[0].ID)
	assert.True(t, tasks[0].Completed)

	assert.Empty(t, Project(tasks, FilterActive, ""))

	done := Project(tasks, FilterCompleted, "")
	require.Len(t, done, 1)
	assert.Equal(t, "Buy milk", done[0].Text)
}
