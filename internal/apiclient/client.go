package apiclient

import (
	"context"

	"github.com/dmitrijs2005/puisi/internal/server/models"
)

type Client interface {
	Register(ctx context.Context, userName, password string) (*models.User, error)
	Login(ctx context.Context, userName, password string) (*models.LoginResponse, error)
	Logout()
	Token() string
	SetToken(token string)
	Me(ctx context.Context) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ValidateToken(ctx context.Context, token string) (*models.Principal, error)
	Ping(ctx context.Context) error

	ListPosts(ctx context.Context) ([]*models.Post, error)
	ListUserPosts(ctx context.Context, userID int64) ([]*models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, req models.PostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, req models.PostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error

	Like(ctx context.Context, postID int64) error
	Unlike(ctx context.Context, postID int64) error
	LikeCount(ctx context.Context, postID int64) (*models.Count, error)
	Liked(ctx context.Context, postID int64) (bool, error)
	Likers(ctx context.Context, postID int64) ([]*models.Liker, error)
	AddComment(ctx context.Context, postID int64, body string) (*models.Comment, error)
	Comments(ctx context.Context, postID int64) ([]*models.Comment, error)
	CommentCount(ctx context.Context, postID int64) (*models.Count, error)
	UpdateComment(ctx context.Context, id int64, body string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
