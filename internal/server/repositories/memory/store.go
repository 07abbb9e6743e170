// Package memory is an in-process RepositoryManager. It keeps every table
// in maps behind one mutex and is used by tests that need real repository
// semantics without PostgreSQL.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/dbx"
	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/comments"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/likes"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/posts"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/users"
)

type likeKey struct{ userID, postID int64 }

type Store struct {
	mu  sync.Mutex
	seq int64
	now func() time.Time

	users    map[int64]*models.User
	posts    map[int64]*models.Post
	likes    map[likeKey]*models.Like
	comments map[int64]*models.Comment
}

func NewStore() *Store {
	return &Store{
		now:      time.Now,
		users:    map[int64]*models.User{},
		posts:    map[int64]*models.Post{},
		likes:    map[likeKey]*models.Like{},
		comments: map[int64]*models.Comment{},
	}
}

// nextID returns a fresh id and a creation time strictly after the
// previous one, so newest-first ordering is deterministic.
func (s *Store) nextID() (int64, time.Time) {
	s.seq++
	return s.seq, s.now().Add(time.Duration(s.seq) * time.Millisecond)
}

func (s *Store) RunMigrations(context.Context, *sql.DB, string) error { return nil }

func (s *Store) Users(dbx.DBTX) users.Repository       { return (*userRepo)(s) }
func (s *Store) Posts(dbx.DBTX) posts.Repository       { return (*postRepo)(s) }
func (s *Store) Likes(dbx.DBTX) likes.Repository       { return (*likeRepo)(s) }
func (s *Store) Comments(dbx.DBTX) comments.Repository { return (*commentRepo)(s) }

type userRepo Store

func (r *userRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.UserName == u.UserName {
			return nil, common.ErrorDuplicateUsername
		}
	}

	c := *u
	c.ID, c.CreatedAt = s.nextID()
	s.users[c.ID] = &c

	out := c
	return &out, nil
}

func (r *userRepo) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.UserName == login {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *userRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.User{ID: u.ID, UserName: u.UserName, CreatedAt: u.CreatedAt}, nil
}

type postRepo Store

func (r *postRepo) Create(_ context.Context, p *models.Post) (*models.Post, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *p
	c.ID, c.CreatedAt = s.nextID()
	s.posts[c.ID] = &c

	out := c
	return &out, nil
}

func (r *postRepo) GetByID(_ context.Context, id int64) (*models.Post, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *p
	return &c, nil
}

func (r *postRepo) filter(keep func(*models.Post) bool) []*models.Post {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*models.Post, 0)
	for _, p := range s.posts {
		if keep(p) {
			c := *p
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}

func (r *postRepo) ListPublic(context.Context) ([]*models.Post, error) {
	return r.filter(func(p *models.Post) bool { return p.IsPublic }), nil
}

func (r *postRepo) ListByUser(_ context.Context, userID int64) ([]*models.Post, error) {
	return r.filter(func(p *models.Post) bool { return p.UserID == userID }), nil
}

func (r *postRepo) OwnerID(_ context.Context, id int64, _ bool) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	return p.UserID, nil
}

func (r *postRepo) Update(_ context.Context, id int64, title, body string, isPublic *bool) (*models.Post, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	p.Title, p.Body = title, body
	if isPublic != nil {
		p.IsPublic = *isPublic
	}
	c := *p
	return &c, nil
}

func (r *postRepo) Delete(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return common.ErrorNotFound
	}
	delete(s.posts, id)
	return nil
}

type likeRepo Store

func (r *likeRepo) Create(_ context.Context, l *models.Like) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{l.UserID, l.PostID}
	if _, ok := s.likes[key]; ok {
		return false, nil
	}
	c := *l
	c.ID, c.CreatedAt = s.nextID()
	s.likes[key] = &c
	return true, nil
}

func (r *likeRepo) Delete(_ context.Context, userID, postID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{userID, postID}
	if _, ok := s.likes[key]; !ok {
		return common.ErrorNotFound
	}
	delete(s.likes, key)
	return nil
}

func (r *likeRepo) Count(_ context.Context, postID int64) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for k := range s.likes {
		if k.postID == postID {
			n++
		}
	}
	return n, nil
}

func (r *likeRepo) Exists(_ context.Context, userID, postID int64) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.likes[likeKey{userID, postID}]
	return ok, nil
}

func (r *likeRepo) ListByPost(_ context.Context, postID int64) ([]*models.Like, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*models.Like, 0)
	for k, l := range s.likes {
		if k.postID == postID {
			c := *l
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

type commentRepo Store

func (r *commentRepo) Create(_ context.Context, c *models.Comment) (*models.Comment, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *c
	stored.ID, stored.CreatedAt = s.nextID()
	s.comments[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *commentRepo) ListByPost(_ context.Context, postID int64) ([]*models.Comment, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*models.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			out := *c
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *commentRepo) Count(_ context.Context, postID int64) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, c := range s.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (r *commentRepo) OwnerID(_ context.Context, id int64, _ bool) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	return c.UserID, nil
}

func (r *commentRepo) UpdateBody(_ context.Context, id int64, body string) (*models.Comment, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c.Body = body
	out := *c
	return &out, nil
}

func (r *commentRepo) Delete(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return common.ErrorNotFound
	}
	delete(s.comments, id)
	return nil
}
