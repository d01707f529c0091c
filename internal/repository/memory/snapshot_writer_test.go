package memory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/soutien-scolaire-api/internal/models"
	"github.com/noah-isme/soutien-scolaire-api/pkg/jobs"
)

type flakySnapshots struct {
	*fakeSnapshots
	failures int
}

func (f *flakySnapshots) Save(name string, data []byte) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("disk full")
	}
	return f.fakeSnapshots.Save(name, data)
}

func TestAsyncSnapshotsFlushOnStop(t *testing.T) {
	backend := newFakeSnapshots()
	async := NewAsyncSnapshots(backend, nil)
	async.Start(context.Background())

	f := newFixture(WithSnapshot(async, "snapshot.json"))
	ctx := context.Background()
	for _, nom := range []string{"Martin", "Bernard", "Petit"} {
		teacher := models.Teacher{Nom: nom, Status: models.TeacherActive}
		require.NoError(t, f.teachers.Create(ctx, &teacher))
	}
	async.Stop()

	var snap snapshot
	require.NoError(t, json.Unmarshal(backend.files["snapshot.json"], &snap))
	require.Len(t, snap.Professeurs, 3)
	assert.Equal(t, "Petit", snap.Professeurs[2].Nom)
}

func TestAsyncSnapshotsWriteInlineWhenStopped(t *testing.T) {
	backend := newFakeSnapshots()
	async := NewAsyncSnapshots(backend, nil)

	require.NoError(t, async.Save("snapshot.json", []byte(`{"v":1}`)))
	assert.Equal(t, 1, backend.saves)

	data, err := async.Load("snapshot.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(data))
}

func TestAsyncSnapshotsDropStaleWrites(t *testing.T) {
	backend := newFakeSnapshots()
	async := NewAsyncSnapshots(backend, nil)

	require.NoError(t, async.Save("snapshot.json", []byte(`{"v":2}`)))
	stale := snapshotWrite{name: "snapshot.json", data: []byte(`{"v":1}`), seq: 0}
	require.NoError(t, async.write(context.Background(), jobs.Job{Payload: stale}))

	assert.JSONEq(t, `{"v":2}`, string(backend.files["snapshot.json"]))
	assert.Equal(t, 1, backend.saves)
}

func TestAsyncSnapshotsReportBackendFailure(t *testing.T) {
	backend := &flakySnapshots{fakeSnapshots: newFakeSnapshots(), failures: 1}
	async := NewAsyncSnapshots(backend, nil)

	assert.Error(t, async.Save("snapshot.json", []byte(`{}`)))
	require.NoError(t, async.Save("snapshot.json", []byte(`{}`)))
	assert.Equal(t, 1, backend.saves)
}
