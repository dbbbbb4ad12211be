// Package remote calls the backend's edge functions. The services
// treat these as optimistic accelerations: any transport failure or
// non-200 response makes the caller fall back to local computation.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"squadtab-go/internal/domain/groups"
	"squadtab-go/internal/domain/stats"
)

const defaultTimeout = 10 * time.Second

type Functions struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func NewFunctions(baseURL, serviceKey string, timeout time.Duration) *Functions {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Functions{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether the client has enough settings to make
// calls. The app wires a nil remote when it does not, which keeps the
// services on their local paths.
func (f *Functions) Configured() bool {
	return f.baseURL != "" && f.serviceKey != ""
}

func (f *Functions) Leaderboard(ctx context.Context, groupID string) ([]groups.LeaderboardEntry, error) {
	var payload struct {
		Leaderboard []groups.LeaderboardEntry `json:"leaderboard"`
	}
	err := f.call(ctx, "leaderboard", map[string]string{"group_id": groupID}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Leaderboard, nil
}

func (f *Functions) WeeklyStats(ctx context.Context, userID, groupID string) (*stats.Snapshot, error) {
	body := map[string]string{"user_id": userID}
	if groupID != "" {
		body["group_id"] = groupID
	}

	var snapshot stats.Snapshot
	if err := f.call(ctx, "weekly-stats", body, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (f *Functions) call(ctx context.Context, name string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("remote %s: encode request: %w", name, err)
	}

	url := f.baseURL + "/functions/v1/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("remote %s: build request: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.serviceKey)
	req.Header.Set("apikey", f.serviceKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("remote %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("remote %s: unexpected status %d", name, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote %s: decode response: %w", name, err)
	}
	return nil
}
