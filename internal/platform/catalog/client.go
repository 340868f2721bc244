// Package catalog provides the course-catalog collaborator: an HTTP client
// for the external catalog service that supplies offered terms and
// catalog-declared prerequisite codes. The optimizer treats the catalog as
// best-effort metadata; a failed fetch degrades to text-only prerequisite
// extraction and is never fatal.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/planwell/planwell-api/internal/domain"
	"github.com/planwell/planwell-api/internal/domain/schedule"
)

// Course is one catalog record as returned by the catalog service,
// keyed by normalized "PREFIX NUM".
type Course struct {
	Code              string   `json:"code"`
	Prefix            string   `json:"prefix"`
	Number            string   `json:"number"`
	PrerequisiteCodes []string `json:"prerequisite_codes"`
	OfferedTerms      []string `json:"offered_terms"`
	AllowConcurrent   bool     `json:"allow_concurrent"`
}

// Lookup fetches catalog course metadata. Implemented by Client; the
// planner service depends on this interface so tests can stub the catalog.
type Lookup interface {
	// GetCourses returns the catalog records matching the year filter.
	// An empty yearFilter returns the full catalog.
	GetCourses(ctx context.Context, yearFilter string) ([]Course, error)
}

// Client is an HTTP implementation of Lookup.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a catalog client for the given base URL. The timeout
// bounds each fetch; it is the only timeout surface of an optimization run.
// If logger is nil, the default logger is used.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With(slog.String("component", "catalog_client")),
	}
}

var _ Lookup = (*Client)(nil)

// GetCourses implements Lookup by calling GET {base}/courses?year={filter}.
func (c *Client) GetCourses(ctx context.Context, yearFilter string) ([]Course, error) {
	endpoint := c.baseURL + "/courses"
	if yearFilter != "" {
		endpoint += "?year=" + url.QueryEscape(yearFilter)
	}

	var payload struct {
		Courses []Course `json:"courses"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch catalog courses: %w", err)
	}

	c.logger.Debug("fetched catalog courses",
		slog.String("year_filter", yearFilter),
		slog.Int("count", len(payload.Courses)))

	return payload.Courses, nil
}

// getJSON performs a GET request and decodes the JSON response body.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// BuildIndex converts catalog records into the optimizer's lookup map,
// keyed by normalized "PREFIX NUM". Records with unparseable terms keep the
// terms that did parse; a record with no usable key is skipped.
func BuildIndex(courses []Course) map[string]schedule.CatalogCourse {
	index := make(map[string]schedule.CatalogCourse, len(courses))
	for _, cc := range courses {
		key := cc.Code
		if key == "" {
			key = cc.Prefix + " " + cc.Number
		}
		key = domain.NormalizeCourseKey(key)
		if key == "" {
			continue
		}

		var terms []domain.Term
		for _, raw := range cc.OfferedTerms {
			if t, err := domain.ParseTerm(raw); err == nil {
				terms = append(terms, t)
			}
		}

		index[key] = schedule.CatalogCourse{
			PrerequisiteCodes: cc.PrerequisiteCodes,
			OfferedTerms:      terms,
			AllowConcurrent:   cc.AllowConcurrent,
		}
	}
	return index
}
