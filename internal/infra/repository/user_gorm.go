package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"telestore/internal/domain/model"
	repo "telestore/internal/repository"
)

type UserGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// GetOrCreateByTgID registers the user on first contact. Concurrent first
// contacts race on the tg_id unique index; the loser re-reads the winner's row.
func (r *UserGormRepository) GetOrCreateByTgID(ctx context.Context, tgID int64) (model.User, error) {
	var user model.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("tg_id = ?", tgID).
			First(&user).Error

		if findErr == nil {
			return nil
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		newUser := model.User{TgID: tgID}
		if err := tx.Create(&newUser).Error; err != nil {
			retryErr := tx.Where("tg_id = ?", tgID).First(&user).Error
			if retryErr == nil {
				return nil
			}
			return translateError(err)
		}

		user = newUser
		return nil
	})

	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *UserGormRepository) FindByTgID(ctx context.Context, tgID int64) (model.User, error) {
	var user model.User

	err := r.db.WithContext(ctx).Where("tg_id = ?", tgID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, repo.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *UserGormRepository) List(ctx context.Context, limit int, offset int) ([]model.User, error) {
	var users []model.User

	q := r.db.WithContext(ctx).Order("id asc").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&users).Error; err != nil {
		return []model.User{}, err
	}
	return users, nil
}

// Delete removes the user row. The schema takes it from there: the cart
// cascades away, historical orders get tg_id set to NULL.
func (r *UserGormRepository) Delete(ctx context.Context, tgID int64) error {
	res := r.db.WithContext(ctx).Where("tg_id = ?", tgID).Delete(&model.User{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrUserNotFound
	}
	return nil
}
