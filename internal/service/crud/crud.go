package crud

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service/internal/entities"
)

type Config[ID comparable] struct {
	// Entity имя сущности для ошибок и событий, например "user".
	Entity string
	// NotFoundMessage формирует текст ошибки для отсутствующего id.
	NotFoundMessage func(id ID) string
}

type Service[E entities.Entity[E, ID], ID comparable] struct {
	entity          string
	notFoundMessage func(id ID) string
	repository      Repository[E, ID]
	txManager       TxManager
	validator       Validator
	notifier        Notifier
}

func New[E entities.Entity[E, ID], ID comparable](
	cfg Config[ID],
	repository Repository[E, ID],
	txManager TxManager,
	validator Validator,
	notifier Notifier,
) *Service[E, ID] {
	notFoundMessage := cfg.NotFoundMessage
	if notFoundMessage == nil {
		notFoundMessage = func(id ID) string {
			return fmt.Sprintf("%s not found for ID: %v", cfg.Entity, id)
		}
	}

	return &Service[E, ID]{
		entity:          cfg.Entity,
		notFoundMessage: notFoundMessage,
		repository:      repository,
		txManager:       txManager,
		validator:       validator,
		notifier:        notifier,
	}
}

func (s *Service[E, ID]) Entity() string {
	return s.entity
}

func (s *Service[E, ID]) List(ctx context.Context) ([]E, error) {
	list, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.entity, err)
	}

	return list, nil
}

func (s *Service[E, ID]) Get(ctx context.Context, id ID) (*E, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, s.notFound(id)
		}
		return nil, fmt.Errorf("get %s: %w", s.entity, err)
	}

	return entity, nil
}

func (s *Service[E, ID]) Create(ctx context.Context, entity E) (*E, error) {
	err := s.validate(entity)
	if err != nil {
		return nil, err
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", s.entity, err)
	}

	s.notify(ctx, entities.ChangeCreated, (*created).Identity(), *created)
	return created, nil
}

// Update полностью заменяет не-идентификаторные поля. id из пути всегда перекрывает id из тела.
func (s *Service[E, ID]) Update(ctx context.Context, id ID, entity E) (*E, error) {
	entity = entity.WithIdentity(id)

	var updated *E
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.lookup(ctx, id)
		if err != nil {
			return err
		}

		err = s.validate(entity)
		if err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, entity)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return s.notFound(id)
			}
			return fmt.Errorf("update %s: %w", s.entity, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, entities.ChangeUpdated, id, *updated)
	return updated, nil
}

func (s *Service[E, ID]) Delete(ctx context.Context, id ID) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.lookup(ctx, id)
		if err != nil {
			return err
		}

		err = s.repository.Delete(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return s.notFound(id)
			}
			return fmt.Errorf("delete %s: %w", s.entity, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(ctx, entities.ChangeDeleted, id, nil)
	return nil
}

func (s *Service[E, ID]) Count(ctx context.Context) (int64, error) {
	count, err := s.repository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.entity, err)
	}

	return count, nil
}

func (s *Service[E, ID]) lookup(ctx context.Context, id ID) error {
	_, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return s.notFound(id)
		}
		return fmt.Errorf("lookup %s: %w", s.entity, err)
	}
	return nil
}

func (s *Service[E, ID]) validate(entity E) error {
	if s.validator == nil {
		return nil
	}

	err := s.validator.Struct(entity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func (s *Service[E, ID]) notFound(id ID) *NotFoundError {
	return NewNotFoundError(s.entity, id, s.notFoundMessage(id))
}

func (s *Service[E, ID]) notify(ctx context.Context, action entities.ChangeAction, id ID, payload any) {
	if s.notifier == nil {
		return
	}

	s.notifier.Notify(ctx, entities.ChangeEvent{
		Entity:     s.entity,
		ID:         fmt.Sprint(id),
		Action:     action,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	})
}
