package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/okhapkin/go-match-sync/internal/config"
	"github.com/okhapkin/go-match-sync/internal/logger"
	"github.com/okhapkin/go-match-sync/models"
)

type httpRemoteGateway struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

func NewHTTPRemoteGateway(cfg config.ClientAdapter, log *logger.Logger) (RemoteGateway, error) {
	if cfg.ServerURL == "" {
		return nil, errors.New("remote gateway: server url is empty")
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.ServerURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpRemoteGateway{client: cli, logger: log}, nil
}

func (h *httpRemoteGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteGateway) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteGateway) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: login request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpRemoteGateway) SubmitSwipe(ctx context.Context, rec models.SwipeRecord) (string, error) {
	req := models.SubmitSwipeRequest{
		ID:           rec.ID,
		UserID:       rec.UserID,
		TargetUserID: rec.TargetUserID,
		Action:       rec.Action,
		Timestamp:    rec.Timestamp,
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/swipes/")
	if err != nil {
		return "", fmt.Errorf("%w: submit swipe request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var ack models.SubmitSwipeResponse
	if err = json.Unmarshal(resp.Body(), &ack); err != nil {
		return "", fmt.Errorf("decode submit swipe response: %w", err)
	}

	return ack.ID, nil
}

func (h *httpRemoteGateway) FetchSwipes(ctx context.Context, userID int64) ([]models.RemoteSwipe, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/swipes/user/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return nil, fmt.Errorf("%w: fetch swipes request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var swipes []models.RemoteSwipe
	if err = json.Unmarshal(resp.Body(), &swipes); err != nil {
		return nil, fmt.Errorf("decode fetch swipes response: %w", err)
	}

	return swipes, nil
}

func (h *httpRemoteGateway) FetchProfiles(ctx context.Context) ([]models.ProfileRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/api/profiles/")
	if err != nil {
		return nil, fmt.Errorf("%w: fetch profiles request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var profiles []models.ProfileRecord
	if err = json.Unmarshal(resp.Body(), &profiles); err != nil {
		return nil, fmt.Errorf("decode fetch profiles response: %w", err)
	}

	return profiles, nil
}

func (h *httpRemoteGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
