package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/repository"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stemsi/school-records/internal/validator"
)

// ConfirmFunc is asked before a record is deleted; false cancels.
type ConfirmFunc[T any] func(record T) bool

// confirmDelete returns Cancelled when confirm declines.
func confirmDelete[T any](record T, confirm ConfirmFunc[T], entity, id string) error {
	if confirm != nil && !confirm(record) {
		return response.Cancelled(entity, id)
	}
	return nil
}

// applyText copies a supplied non-blank value into dst. Blank values are
// rejected and dst keeps its previous value.
func applyText(res *model.UpdateResult, field string, in *string, dst *string) {
	if in == nil {
		return
	}
	v := strings.TrimSpace(*in)
	if msg := validator.Var(field, v, "notblank"); msg != "" {
		res.Reject(field, msg)
		return
	}
	*dst = v
	res.Changed = append(res.Changed, field)
}

func subjectName(ctx context.Context, repo *repository.SchoolRepository, id string) string {
	if s, err := repo.GetSubject(ctx, id); err == nil {
		return s.Name
	}
	return fmt.Sprintf("Unknown Subject (%s)", id)
}

// gradeName returns the grade's name or fallback when id is empty or unknown.
func gradeName(ctx context.Context, repo *repository.SchoolRepository, id, fallback string) string {
	if id == "" {
		return fallback
	}
	if g, err := repo.GetGrade(ctx, id); err == nil {
		return g.Name
	}
	return fallback
}

func trimAll(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
