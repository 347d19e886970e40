// Package pocketbase provides a pockettypes Source that reads collection
// schemas from a running PocketBase server.
//
// The source logs in as a superuser (or uses a pre-issued token) and pages
// through the collections API until the full list has been read.
package pocketbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/thisuxhq/pockettypes"
	"go.uber.org/zap"
)

// PageSize is the number of collections requested per page.
const PageSize = 500

//nolint:gochecknoinits // Source self-registration pattern
func init() {
	pockettypes.RegisterSource(pockettypes.SourcePocketBase, func(cfg any) (pockettypes.Source, error) {
		pbCfg, ok := cfg.(*pockettypes.PocketBaseConfig)
		if !ok {
			return nil, fmt.Errorf("%w, got %T", ErrInvalidConfig, cfg)
		}

		return New(pbCfg, WithLogger(zap.L()))
	})
}

// Source implements pockettypes.Source for a PocketBase server.
type Source struct {
	baseURL        string
	username       string
	password       string
	token          string
	authCollection string
	client         *http.Client
	logger         *zap.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) {
		s.client = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Source) {
		s.logger = l
	}
}

// New creates a source from the given configuration.
// No request is made until Collections is called.
func New(cfg *pockettypes.PocketBaseConfig, opts ...Option) (*Source, error) {
	if cfg == nil || strings.TrimSpace(cfg.URL) == "" {
		return nil, ErrNoURL
	}

	s := &Source{
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.URL), "/"),
		username:       cfg.Username,
		password:       cfg.Password,
		token:          cfg.Token,
		authCollection: cfg.AuthCollectionOrDefault(),
		client:         http.DefaultClient,
		logger:         zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return pockettypes.SourcePocketBase
}

// Collections authenticates and returns every collection on the server.
func (s *Source) Collections(ctx context.Context) ([]*pockettypes.Collection, error) {
	token := s.token
	if token == "" {
		var err error

		token, err = s.authenticate(ctx)
		if err != nil {
			return nil, err
		}
	}

	var wire []wireCollection

	for page := 1; ; page++ {
		items, err := s.listPage(ctx, token, page)
		if err != nil {
			return nil, err
		}

		wire = append(wire, items...)

		s.logger.Debug("Fetched collections page",
			zap.Int("page", page), zap.Int("items", len(items)))

		if len(items) < PageSize {
			break
		}
	}

	s.logger.Info("Fetched schema", zap.String("url", s.baseURL), zap.Int("collections", len(wire)))

	return convertCollections(wire), nil
}

type authRequest struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

type apiError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type listResponse struct {
	Page    int              `json:"page"`
	PerPage int              `json:"perPage"`
	Items   []wireCollection `json:"items"`
}

func (s *Source) authenticate(ctx context.Context) (string, error) {
	body, err := json.Marshal(authRequest{Identity: s.username, Password: s.password})
	if err != nil {
		return "", fmt.Errorf("pocketbase: encoding credentials: %w", err)
	}

	endpoint := s.baseURL + "/api/collections/" + url.PathEscape(s.authCollection) + "/auth-with-password"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("pocketbase: building auth request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	var out authResponse
	if err := s.do(req, &out); err != nil {
		return "", fmt.Errorf("%w as %q: %w", ErrAuth, s.username, err)
	}

	if out.Token == "" {
		return "", fmt.Errorf("%w: no token in response", ErrAuth)
	}

	s.logger.Debug("Authenticated", zap.String("collection", s.authCollection), zap.String("identity", s.username))

	return out.Token, nil
}

func (s *Source) listPage(ctx context.Context, token string, page int) ([]wireCollection, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(PageSize))
	query.Set("skipTotal", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/collections?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("pocketbase: building list request: %w", err)
	}

	req.Header.Set("Authorization", token)

	var out listResponse
	if err := s.do(req, &out); err != nil {
		return nil, fmt.Errorf("pocketbase: listing collections (page %d): %w", page, err)
	}

	return out.Items, nil
}

// do sends req and decodes a JSON response into out.
func (s *Source) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))

		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}

		return fmt.Errorf("%w: %s %s: %d %s", ErrRequest, req.Method, req.URL.Path, resp.StatusCode, msg)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// Compile-time interface checks.
var _ pockettypes.Source = (*Source)(nil)
