package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"JobTracker/internal/modules/scraper/domain/extract"
	"JobTracker/pkg/xerr"
	"JobTracker/pkg/zlog"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	cachePrefix = "jobtracker:scrape:"
	maxBody     = 2 << 20
)

var (
	errURLRequired = xerr.New(xerr.BadRequest, "URL is required")
	errInvalidURL  = xerr.New(xerr.BadRequest, "Invalid URL")
	errFetch       = xerr.New(xerr.Unprocessable, "Could not fetch URL")
	errScrape      = xerr.New(xerr.InternalServerError, "Failed to scrape URL")

	// ErrCacheMiss Cache 实现在 key 不存在时返回
	ErrCacheMiss = errors.New("scrape cache miss")
)

// Cache 抓取结果缓存，未连接 redis 时传 nil
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type ScraperService interface {
	Scrape(ctx context.Context, rawURL string) (*extract.Job, error)
}

type scraperServiceImpl struct {
	client    *http.Client
	userAgent string
	cache     Cache
	cacheTTL  time.Duration
}

func NewScraperService(client *http.Client, userAgent string, cache Cache, cacheTTL time.Duration) ScraperService {
	return &scraperServiceImpl{client: client, userAgent: userAgent, cache: cache, cacheTTL: cacheTTL}
}

func (s *scraperServiceImpl) Scrape(ctx context.Context, rawURL string) (*extract.Job, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, errURLRequired
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errInvalidURL
	}

	if job, ok := s.cached(ctx, rawURL); ok {
		return job, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errScrape
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		zlog.Warn("scrape request failed", zap.String("url", rawURL), zap.Error(err))
		return nil, errScrape
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		zlog.Info("scrape target returned non-2xx", zap.String("url", rawURL), zap.Int("status", resp.StatusCode))
		return nil, errFetch
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		zlog.Warn("parse scraped page failed", zap.String("url", rawURL), zap.Error(err))
		return nil, errScrape
	}
	// 跟随重定向后以最终地址推断公司
	job := extract.Extract(doc, resp.Request.URL)
	s.store(ctx, rawURL, &job)
	return &job, nil
}

func (s *scraperServiceImpl) cached(ctx context.Context, rawURL string) (*extract.Job, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, cachePrefix+rawURL)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			zlog.Warn("scrape cache get failed", zap.Error(err))
		}
		return nil, false
	}
	var job extract.Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		return nil, false
	}
	return &job, true
}

func (s *scraperServiceImpl) store(ctx context.Context, rawURL string, job *extract.Job) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	b, err := json.Marshal(job)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cachePrefix+rawURL, string(b), s.cacheTTL); err != nil {
		zlog.Warn("scrape cache set failed", zap.Error(err))
	}
}
