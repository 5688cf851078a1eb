package usecase

import (
	"context"
	"errors"
	"fmt"

	"article-uploader/internal/article/repository"
	"article-uploader/internal/model"
)

// ResolveCategory finds the category called name, creating it when the
// search does not return one.
//
// A search that answers with a non-200 status falls through to creation, as
// does an empty result. When several categories match, the first one listed
// by WordPress wins, even if its name only contains the searched text.
// Transport failures and a failed creation are returned as errors.
func (uc *implUseCase) ResolveCategory(ctx context.Context, name string) (model.Category, error) {
	if uc.categories != nil {
		if cat, ok := uc.categories.Get(name); ok {
			uc.l.Debugf(ctx, "ResolveCategory: %q served from cache id=%d", name, cat.ID)
			return cat, nil
		}
	}

	found, err := uc.wp.SearchCategories(ctx, name)
	switch {
	case err == nil && len(found) > 0:
		if len(found) > 1 {
			uc.l.Warnf(ctx, "ResolveCategory: search %q matched %d categories, using first (%q id=%d)", name, len(found), found[0].Name, found[0].ID)
		}
		uc.remember(name, found[0])
		uc.l.Debugf(ctx, "ResolveCategory: found %q id=%d", name, found[0].ID)
		return found[0], nil

	case err != nil && !errors.Is(err, repository.ErrUnexpectedStatus):
		return model.Category{}, fmt.Errorf("failed to search category %q: %w", name, err)

	case err != nil:
		uc.l.Warnf(ctx, "ResolveCategory: search %q was not successful, creating: %v", name, err)
	}

	created, err := uc.wp.CreateCategory(ctx, name)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category '%s': %w", name, err)
	}

	uc.remember(name, created)
	uc.l.Infof(ctx, "ResolveCategory: created %q id=%d", name, created.ID)
	return created, nil
}

func (uc *implUseCase) remember(name string, cat model.Category) {
	if uc.categories != nil {
		uc.categories.Add(name, cat)
	}
}
