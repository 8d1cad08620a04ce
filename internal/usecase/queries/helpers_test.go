//go:build unit

package queries_test

import (
	"context"
	"time"

	"neighbiz/internal/infra"

	"github.com/jackc/pgx/v5"
)

var (
	seoul = mustLoadLocation("Asia/Seoul")
	// 2026-03-10 12:00 KST
	fixedNow = time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)
	errDB    = infra.WrapRepoErr("query failed", context.DeadlineExceeded)
	notFound = infra.WrapRepoErr("not found", pgx.ErrNoRows)
)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

func ptr[T any](v T) *T {
	return &v
}
