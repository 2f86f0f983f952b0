package repositories

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anujnegi157/evalease-screens/internal/models"
	"github.com/Anujnegi157/evalease-screens/internal/requisition"
)

func TestRequisitionRepository_CreateAndFind(t *testing.T) {
	repo := NewRequisitionRepository()

	draft, err := repo.Create(models.Requisition{CandidateName: "Ada"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, draft.ID)
	assert.Equal(t, uint64(1), draft.Version)

	found, err := repo.FindByID(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Requisition.CandidateName)

	_, err = repo.FindByID(uuid.New())
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRequisitionRepository_ApplyBumpsVersionOnlyOnChange(t *testing.T) {
	repo := NewRequisitionRepository()
	draft, err := repo.Create(models.Requisition{})
	require.NoError(t, err)

	add := requisition.Event{Type: requisition.EventSkillAdded, List: requisition.MandatorySkills, Value: "Go"}

	updated, err := repo.Apply(draft.ID, add)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), updated.Version)
	assert.Equal(t, []string{"Go"}, updated.Requisition.MandatorySkills)

	again, err := repo.Apply(draft.ID, add)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), again.Version)
}

func TestRequisitionRepository_ApplyErrors(t *testing.T) {
	repo := NewRequisitionRepository()
	draft, err := repo.Create(models.Requisition{})
	require.NoError(t, err)

	_, err = repo.Apply(draft.ID, requisition.Event{Type: requisition.EventQuestionUpdated, Index: 0, Value: "x"})
	assert.ErrorIs(t, err, requisition.ErrQuestionIndexOutOfRange)

	_, err = repo.Apply(uuid.New(), requisition.Event{Type: requisition.EventReset})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRequisitionRepository_Delete(t *testing.T) {
	repo := NewRequisitionRepository()
	draft, err := repo.Create(models.Requisition{})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(draft.ID))
	assert.ErrorIs(t, repo.Delete(draft.ID), ErrDraftNotFound)

	// ending an operation on a deleted draft is a no-op
	repo.EndOperation(draft.ID)
}

func TestRequisitionRepository_OneOperationAtATime(t *testing.T) {
	repo := NewRequisitionRepository()
	draft, err := repo.Create(models.Requisition{})
	require.NoError(t, err)

	pending, err := repo.BeginOperation(draft.ID, models.OperationGenerate)
	require.NoError(t, err)
	assert.Equal(t, models.OperationGenerate, pending.Pending)

	_, err = repo.BeginOperation(draft.ID, models.OperationDispatch)
	assert.ErrorIs(t, err, ErrOperationInProgress)

	repo.EndOperation(draft.ID)

	_, err = repo.BeginOperation(draft.ID, models.OperationDispatch)
	assert.NoError(t, err)
}

func TestRequisitionRepository_ConcurrentBegin(t *testing.T) {
	repo := NewRequisitionRepository()
	draft, err := repo.Create(models.Requisition{})
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		started int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.BeginOperation(draft.ID, models.OperationDispatch); err == nil {
				mu.Lock()
				started++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, started)
}

func TestRequisitionRepository_CompleteClearsPending(t *testing.T) {
	repo := NewRequisitionRepository()
	draft, err := repo.Create(models.Requisition{CandidateName: "Ada"})
	require.NoError(t, err)

	_, err = repo.BeginOperation(draft.ID, models.OperationDispatch)
	require.NoError(t, err)

	done, err := repo.Complete(draft.ID, requisition.Event{Type: requisition.EventReset})
	require.NoError(t, err)
	assert.Equal(t, models.OperationNone, done.Pending)
	assert.Equal(t, models.Requisition{}, done.Requisition)

	_, err = repo.Complete(uuid.New(), requisition.Event{Type: requisition.EventReset})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRequisitionRepository_EditsBlockedDuringDispatch(t *testing.T) {
	repo := NewRequisitionRepository()
	draft, err := repo.Create(models.Requisition{})
	require.NoError(t, err)

	edit := requisition.Event{Type: requisition.EventFieldChanged, Field: requisition.FieldCandidateName, Value: "Ada"}

	_, err = repo.BeginOperation(draft.ID, models.OperationDispatch)
	require.NoError(t, err)

	_, err = repo.Apply(draft.ID, edit)
	assert.ErrorIs(t, err, ErrOperationInProgress)

	repo.EndOperation(draft.ID)

	updated, err := repo.Apply(draft.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.Requisition.CandidateName)
}

func TestRequisitionRepository_EditsAllowedDuringGenerate(t *testing.T) {
	repo := NewRequisitionRepository()
	draft, err := repo.Create(models.Requisition{})
	require.NoError(t, err)

	_, err = repo.BeginOperation(draft.ID, models.OperationGenerate)
	require.NoError(t, err)

	updated, err := repo.Apply(draft.ID, requisition.Event{Type: requisition.EventFieldChanged, Field: requisition.FieldCandidateName, Value: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, models.OperationGenerate, updated.Pending)
}
