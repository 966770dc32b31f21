package httpx

import (
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"
)

var (
    DefaultTimeout = 20 * time.Second
    PollInterval   = 300 * time.Millisecond
)

// HealthPath is the server's liveness route.
const HealthPath = "/api/health"

func GetJSON(ctx context.Context, url string) ([]byte, error) {
    ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
    defer cancel()

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
    if err != nil {
        return nil, err
    }
    req.Header.Set("Accept", "application/json")
    resp, err := http.DefaultClient.Do(req)
    if err != nil {
        return nil, err
    }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
        return nil, fmt.Errorf("GET %s: %s (%d)", url, strings.TrimSpace(string(b)), resp.StatusCode)
    }
    all, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, err
    }
    return all, nil
}

// Health asks a running server for its status and returns the reported value.
func Health(ctx context.Context, baseURL string) (string, error) {
    body, err := GetJSON(ctx, strings.TrimRight(baseURL, "/")+HealthPath)
    if err != nil {
        return "", err
    }
    var out struct {
        Status string `json:"status"`
    }
    if err := json.Unmarshal(body, &out); err != nil {
        return "", fmt.Errorf("decode health: %w", err)
    }
    if out.Status == "" {
        return "", fmt.Errorf("health: empty status")
    }
    return out.Status, nil
}

// WaitHTTPUp polls url until it answers below 500, ctx ends, or timeout passes.
func WaitHTTPUp(ctx context.Context, url string, timeout time.Duration) error {
    ctx, cancel := context.WithTimeout(ctx, timeout)
    defer cancel()
    for {
        req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
        if err != nil {
            return err
        }
        resp, err := http.DefaultClient.Do(req)
        if err == nil {
            resp.Body.Close()
            if resp.StatusCode < 500 {
                return nil
            }
        }
        select {
        case <-ctx.Done():
            return fmt.Errorf("timeout waiting for %s", url)
        case <-time.After(PollInterval):
        }
    }
}
