package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix          = "user:%d"
	PostKeyPrefix          = "post:%s"
	PostReactionsKeyPrefix = "post:%s:reacoes"
	CategoriesKey          = "categorias"
	DashboardKey           = "painel:contadores"
)

const (
	UserTTL          = 5 * time.Minute
	PostTTL          = 10 * time.Minute
	PostReactionsTTL = 1 * time.Minute
	CategoriesTTL    = 30 * time.Minute
	DashboardTTL     = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(slug string) string {
	return fmt.Sprintf(PostKeyPrefix, slug)
}

func PostReactionsKey(slug string) string {
	return fmt.Sprintf(PostReactionsKeyPrefix, slug)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, slug string) {
	Invalidate(ctx, PostKey(slug))
	Invalidate(ctx, PostReactionsKey(slug))
}

func InvalidateCategories(ctx context.Context) {
	Invalidate(ctx, CategoriesKey)
}

func InvalidateDashboard(ctx context.Context) {
	Invalidate(ctx, DashboardKey)
}
