package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix     = "user:%d"
	CommentsKeyPrefix = "post:%d:comments"
)

const (
	UserTTL     = 5 * time.Minute
	CommentsTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func CommentsKey(postID uint) string {
	return fmt.Sprintf(CommentsKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateComments(ctx context.Context, postID uint) {
	Invalidate(ctx, CommentsKey(postID))
}
