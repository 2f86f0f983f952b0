package repositories

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Anujnegi157/evalease-screens/internal/models"
	"github.com/Anujnegi157/evalease-screens/internal/requisition"
)

var (
	ErrDraftNotFound       = errors.New("requisition draft not found")
	ErrOperationInProgress = errors.New("another operation is already in progress for this requisition")
)

// RequisitionRepository keeps the requisitions being edited in memory.
type RequisitionRepository interface {
	Create(initial models.Requisition) (*models.Draft, error)
	FindByID(id uuid.UUID) (*models.Draft, error)
	Apply(id uuid.UUID, ev requisition.Event) (*models.Draft, error)
	Complete(id uuid.UUID, ev requisition.Event) (*models.Draft, error)
	Delete(id uuid.UUID) error
	BeginOperation(id uuid.UUID, op models.DraftOperation) (*models.Draft, error)
	EndOperation(id uuid.UUID)
}

type draftEntry struct {
	editor    *requisition.Editor
	version   uint64
	pending   models.DraftOperation
	createdAt time.Time
	updatedAt time.Time
}

type requisitionRepository struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]*draftEntry
	now    func() time.Time
}

func NewRequisitionRepository() RequisitionRepository {
	return &requisitionRepository{
		drafts: make(map[uuid.UUID]*draftEntry),
		now:    time.Now,
	}
}

// Create implements RequisitionRepository.
func (r *requisitionRepository) Create(initial models.Requisition) (*models.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry := &draftEntry{
		editor:    requisition.NewEditor(initial),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
	entry.editor.OnChange(func(prev, next models.Requisition, ev requisition.Event) {
		entry.version++
		entry.updatedAt = r.now()
	})

	id := uuid.New()
	r.drafts[id] = entry

	return snapshot(id, entry), nil
}

// FindByID implements RequisitionRepository.
func (r *requisitionRepository) FindByID(id uuid.UUID) (*models.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return snapshot(id, entry), nil
}

// Apply implements RequisitionRepository. Edits are rejected while a
// dispatch is in flight, since a successful dispatch resets the draft.
func (r *requisitionRepository) Apply(id uuid.UUID, ev requisition.Event) (*models.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if entry.pending == models.OperationDispatch {
		return nil, ErrOperationInProgress
	}

	if _, err := entry.editor.Apply(ev); err != nil {
		return nil, err
	}
	return snapshot(id, entry), nil
}

// Complete applies the result of the pending operation and clears it in one
// step, so the returned draft is no longer marked pending.
func (r *requisitionRepository) Complete(id uuid.UUID, ev requisition.Event) (*models.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}

	entry.pending = models.OperationNone
	if _, err := entry.editor.Apply(ev); err != nil {
		return nil, err
	}
	return snapshot(id, entry), nil
}

// Delete implements RequisitionRepository.
func (r *requisitionRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(r.drafts, id)
	return nil
}

// BeginOperation marks op as pending on the draft. Only one generate or
// dispatch may be pending per draft at a time.
func (r *requisitionRepository) BeginOperation(id uuid.UUID, op models.DraftOperation) (*models.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if entry.pending != models.OperationNone {
		return nil, ErrOperationInProgress
	}

	entry.pending = op
	return snapshot(id, entry), nil
}

// EndOperation clears the pending operation. A draft deleted in the
// meantime is ignored.
func (r *requisitionRepository) EndOperation(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.drafts[id]; ok {
		entry.pending = models.OperationNone
	}
}

func snapshot(id uuid.UUID, entry *draftEntry) *models.Draft {
	return &models.Draft{
		ID:          id,
		Version:     entry.version,
		Requisition: entry.editor.State(),
		Pending:     entry.pending,
		CreatedAt:   entry.createdAt,
		UpdatedAt:   entry.updatedAt,
	}
}
