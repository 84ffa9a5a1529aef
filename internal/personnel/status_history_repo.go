package personnel

import (
	"context"

	"gorm.io/gorm"
)

// HistoryRepository is append-only on purpose: the ledger exposes no
// update or delete, so entries can never be rewritten after the fact.
//
//go:generate mockgen -source=status_history_repo.go -destination=mock/status_history_repo_mock.go -package=mock
type HistoryRepository interface {
	WithTx(tx *gorm.DB) HistoryRepository
	Create(ctx context.Context, entry *StatusHistory) error
	FindByPersonnel(ctx context.Context, personnelID string) ([]StatusHistory, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) WithTx(tx *gorm.DB) HistoryRepository {
	return &historyRepository{db: tx}
}

func (r *historyRepository) Create(ctx context.Context, entry *StatusHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *historyRepository) FindByPersonnel(ctx context.Context, personnelID string) ([]StatusHistory, error) {
	var entries []StatusHistory
	err := r.db.WithContext(ctx).
		Where("personnel_id = ?", personnelID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
