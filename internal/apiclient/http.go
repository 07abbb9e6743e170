package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/requestid"
	"github.com/dmitrijs2005/puisi/internal/server/models"
)

// Endpoints are the base URLs of the three services. They may share a host
// behind a gateway, e.g. https://example.org/api/auth.
type Endpoints struct {
	Auth     string
	Puisi    string
	Reaction string
}

type HTTPClient struct {
	endpoints Endpoints
	http      *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client whose requests give up after timeout.
func NewHTTPClient(endpoints Endpoints, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoints: Endpoints{
			Auth:     strings.TrimRight(endpoints.Auth, "/"),
			Puisi:    strings.TrimRight(endpoints.Puisi, "/"),
			Reaction: strings.TrimRight(endpoints.Reaction, "/"),
		},
		http: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) Logout() { c.SetToken("") }

// call performs one JSON request. token is sent as a Bearer token when not
// empty; out may be nil.
func (c *HTTPClient) call(ctx context.Context, method, url, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}
	if id := requestid.From(ctx); id != "" {
		req.Header.Set(common.RequestIDHeaderName, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var er models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err == nil {
			apiErr.Code, apiErr.Message = er.Code, er.Error
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// authed is call with the stored token, failing fast when there is none.
func (c *HTTPClient) authed(ctx context.Context, method, url string, in, out any) error {
	token := c.Token()
	if token == "" {
		return ErrNotLoggedIn
	}
	return c.call(ctx, method, url, token, in, out)
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

func (c *HTTPClient) Register(ctx context.Context, userName, password string) (*models.User, error) {
	var u models.User
	err := c.call(ctx, http.MethodPost, c.endpoints.Auth+"/register", "",
		models.CredentialsRequest{UserName: userName, Password: password}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Login keeps the returned token for subsequent protected calls.
func (c *HTTPClient) Login(ctx context.Context, userName, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.call(ctx, http.MethodPost, c.endpoints.Auth+"/login", "",
		models.CredentialsRequest{UserName: userName, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.authed(ctx, http.MethodGet, c.endpoints.Auth+"/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var u models.User
	if err := c.call(ctx, http.MethodGet, c.endpoints.Auth+"/user/"+id(userID), "", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ValidateToken asks the auth service about token, independent of the
// stored one.
func (c *HTTPClient) ValidateToken(ctx context.Context, token string) (*models.Principal, error) {
	var resp models.ValidateTokenResponse
	if err := c.call(ctx, http.MethodPost, c.endpoints.Auth+"/validate-token", token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Valid {
		return nil, common.ErrInvalidToken
	}
	return &resp.User, nil
}

// Ping checks the health endpoint of every service.
func (c *HTTPClient) Ping(ctx context.Context) error {
	var errs []error
	for _, base := range []string{c.endpoints.Auth, c.endpoints.Puisi, c.endpoints.Reaction} {
		var h models.HealthResponse
		if err := c.call(ctx, http.MethodGet, base+"/health", "", nil, &h); err != nil {
			errs = append(errs, err)
			continue
		}
		if h.Status != "OK" {
			errs = append(errs, fmt.Errorf("%s: %w", base, ErrUnavailable))
		}
	}
	return errors.Join(errs...)
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]*models.Post, error) {
	var list []*models.Post
	if err := c.call(ctx, http.MethodGet, c.endpoints.Puisi+"/puisi", "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) ListUserPosts(ctx context.Context, userID int64) ([]*models.Post, error) {
	var list []*models.Post
	if err := c.call(ctx, http.MethodGet, c.endpoints.Puisi+"/puisi/user/"+id(userID), "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	var p models.Post
	if err := c.call(ctx, http.MethodGet, c.endpoints.Puisi+"/puisi/"+id(postID), "", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, req models.PostRequest) (*models.Post, error) {
	var p models.Post
	if err := c.authed(ctx, http.MethodPost, c.endpoints.Puisi+"/puisi", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, postID int64, req models.PostRequest) (*models.Post, error) {
	var p models.Post
	if err := c.authed(ctx, http.MethodPut, c.endpoints.Puisi+"/puisi/"+id(postID), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, postID int64) error {
	return c.authed(ctx, http.MethodDelete, c.endpoints.Puisi+"/puisi/"+id(postID), nil, nil)
}

func (c *HTTPClient) Like(ctx context.Context, postID int64) error {
	return c.authed(ctx, http.MethodPost, c.endpoints.Reaction+"/like", models.ReactionRequest{PostID: postID}, nil)
}

func (c *HTTPClient) Unlike(ctx context.Context, postID int64) error {
	return c.authed(ctx, http.MethodPost, c.endpoints.Reaction+"/unlike", models.ReactionRequest{PostID: postID}, nil)
}

func (c *HTTPClient) LikeCount(ctx context.Context, postID int64) (*models.Count, error) {
	var n models.Count
	if err := c.call(ctx, http.MethodGet, c.endpoints.Reaction+"/like/count/"+id(postID), "", nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *HTTPClient) Liked(ctx context.Context, postID int64) (bool, error) {
	var resp models.LikedResponse
	if err := c.authed(ctx, http.MethodGet, c.endpoints.Reaction+"/like/check/"+id(postID), nil, &resp); err != nil {
		return false, err
	}
	return resp.Liked, nil
}

func (c *HTTPClient) Likers(ctx context.Context, postID int64) ([]*models.Liker, error) {
	var list []*models.Liker
	if err := c.call(ctx, http.MethodGet, c.endpoints.Reaction+"/like/users/"+id(postID), "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, postID int64, body string) (*models.Comment, error) {
	var cm models.Comment
	err := c.authed(ctx, http.MethodPost, c.endpoints.Reaction+"/komentar",
		models.CommentRequest{PostID: postID, Body: body}, &cm)
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

func (c *HTTPClient) Comments(ctx context.Context, postID int64) ([]*models.Comment, error) {
	var list []*models.Comment
	if err := c.call(ctx, http.MethodGet, c.endpoints.Reaction+"/komentar/"+id(postID), "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CommentCount(ctx context.Context, postID int64) (*models.Count, error) {
	var n models.Count
	if err := c.call(ctx, http.MethodGet, c.endpoints.Reaction+"/komentar/count/"+id(postID), "", nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *HTTPClient) UpdateComment(ctx context.Context, commentID int64, body string) (*models.Comment, error) {
	var cm models.Comment
	err := c.authed(ctx, http.MethodPut, c.endpoints.Reaction+"/komentar/"+id(commentID),
		models.CommentRequest{Body: body}, &cm)
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, commentID int64) error {
	return c.authed(ctx, http.MethodDelete, c.endpoints.Reaction+"/komentar/"+id(commentID), nil, nil)
}
