package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/models"
)

func TestPostRepository_GetBySlug_AtomicIncrement(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	// The counter bump must be a single UPDATE against the stored value, not
	// a read-modify-write on the loaded struct.
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "posts" SET "view_count"=view_count + $1 WHERE slug = $2 AND "posts"."deleted_at" IS NULL`)).
		WithArgs(1, "my-post").
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "posts" WHERE slug = $1 AND "posts"."deleted_at" IS NULL ORDER BY "posts"."id" LIMIT $2`)).
		WithArgs("my-post", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title", "user_id", "view_count"}).
			AddRow(1, "my-post", "My Post", 1, 5))

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Alice"))

	post, err := repo.GetBySlug(ctx, "my-post", true)
	require.NoError(t, err)
	assert.Equal(t, int64(5), post.ViewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetBySlug_MissingPostNotIncremented(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "posts" SET "view_count"=view_count + $1 WHERE slug = $2 AND "posts"."deleted_at" IS NULL`)).
		WithArgs(1, "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.GetBySlug(context.Background(), "ghost", true)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func seedPost(t *testing.T, repo PostRepository, userID uint, title, category string, views int64, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:    userID,
		Title:     title,
		Slug:      slugFromTitle(title),
		Content:   "content of " + title,
		Category:  category,
		ViewCount: views,
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

// slugFromTitle keeps fixtures readable without pulling in the validation package.
func slugFromTitle(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func TestPostRepository_ViewCountSemantics(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := models.User{Name: "Alice", Email: "a@example.com", Password: "pw"}
	require.NoError(t, db.Create(&user).Error)
	seedPost(t, repo, user.ID, "Counted Post", "general", 0, time.Now())

	// N reads bump the counter exactly N times.
	for i := 1; i <= 5; i++ {
		post, err := repo.GetBySlug(ctx, "counted-post", true)
		require.NoError(t, err)
		assert.Equal(t, int64(i), post.ViewCount)
	}

	// Suppressed reads leave it untouched.
	post, err := repo.GetBySlug(ctx, "counted-post", false)
	require.NoError(t, err)
	assert.Equal(t, int64(5), post.ViewCount)

	// Author preloaded either way.
	assert.Equal(t, "Alice", post.User.Name)
}

func TestPostRepository_ListFilters(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := models.User{Name: "Alice", Email: "a@example.com", Password: "pw"}
	require.NoError(t, db.Create(&user).Error)

	base := time.Now().Add(-time.Hour)
	seedPost(t, repo, user.ID, "Intro to Gardening", "general", 10, base)
	seedPost(t, repo, user.ID, "Postgres Indexing", "databases", 50, base.Add(time.Minute))
	seedPost(t, repo, user.ID, "CSS Grid Layouts", "web-design", 30, base.Add(2*time.Minute))

	t.Run("default order is newest first", func(t *testing.T) {
		posts, err := repo.List(ctx, PostListOptions{})
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "CSS Grid Layouts", posts[0].Title)
		assert.Equal(t, "Intro to Gardening", posts[2].Title)
	})

	t.Run("category filter", func(t *testing.T) {
		posts, err := repo.List(ctx, PostListOptions{Category: "databases"})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Postgres Indexing", posts[0].Title)
	})

	t.Run("search is case-insensitive over title and content", func(t *testing.T) {
		posts, err := repo.List(ctx, PostListOptions{Search: "POSTGRES"})
		require.NoError(t, err)
		require.Len(t, posts, 1)

		posts, err = repo.List(ctx, PostListOptions{Search: "content of css"})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "CSS Grid Layouts", posts[0].Title)
	})

	t.Run("popular sort orders by views", func(t *testing.T) {
		posts, err := repo.List(ctx, PostListOptions{Sort: "popular"})
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "Postgres Indexing", posts[0].Title)
		assert.Equal(t, "Intro to Gardening", posts[2].Title)
	})

	t.Run("limit and offset page through", func(t *testing.T) {
		posts, err := repo.List(ctx, PostListOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, posts, 2)

		posts, err = repo.List(ctx, PostListOptions{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, posts, 1)
	})
}

func TestPostRepository_DeleteLeavesComments(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	user := models.User{Name: "Alice", Email: "a@example.com", Password: "pw"}
	require.NoError(t, db.Create(&user).Error)
	post := seedPost(t, repo, user.ID, "Doomed Post", "general", 0, time.Now())

	comment := &models.Comment{Content: "first!", UserID: user.ID, PostID: post.ID}
	require.NoError(t, commentRepo.Create(ctx, comment))

	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID)
	require.Error(t, err)

	// The orphaned comment is still there.
	comments, err := commentRepo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}
