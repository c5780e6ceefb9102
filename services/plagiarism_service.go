// file: services/plagiarism_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"hatch/database"
)

var (
	ErrAnalyzerUnavailable = errors.New("plagiarism checker service unavailable")
	ErrAnalysisTimeout     = errors.New("repository analysis took too long")
	ErrNotGitHubURL        = errors.New("only GitHub repositories are supported")
)

// analysisTimeout bounds the delegated check; the analyzer may keep
// running after the caller has been answered, cancellation is not
// propagated past the HTTP request.
const analysisTimeout = 3 * time.Minute

const plagiarismCacheTTL = time.Hour

var plagiarismClient = &http.Client{}

// CheckRepository delegates a plagiarism analysis of a GitHub repo to
// the external analyzer service and caches its report in Redis, since
// a full repository analysis is expensive.
func CheckRepository(ctx context.Context, repoURL string) (interface{}, error) {
	if !strings.Contains(repoURL, "github.com") {
		return nil, ErrNotGitHubURL
	}

	serviceURL := os.Getenv("PLAGIARISM_API_URL")
	if serviceURL == "" {
		return nil, ErrAnalyzerUnavailable
	}

	cacheKey := "plagiarism:" + repoURL
	if val, err := database.RDB.Get(database.Ctx, cacheKey).Result(); err == nil {
		var cached interface{}
		if json.Unmarshal([]byte(val), &cached) == nil {
			return cached, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()

	payload, _ := json.Marshal(map[string]string{"repository_url": repoURL})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serviceURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("X-GitHub-Token", token)
	}

	resp, err := plagiarismClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return nil, ErrAnalysisTimeout
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyzer returned status %d", resp.StatusCode)
	}

	var report interface{}
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(report); err == nil {
		database.RDB.Set(database.Ctx, cacheKey, data, plagiarismCacheTTL)
	}
	return report, nil
}
