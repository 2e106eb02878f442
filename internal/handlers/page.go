package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"dataanalyzer/internal/fonts"
	"dataanalyzer/internal/layout"
	u "dataanalyzer/internal/utils"
	"dataanalyzer/internal/views"
)

// PageService bundles configuration and dependencies for document rendering.
type PageService struct {
	Config *u.Config
	Redis  *redis.Client
	Face   *fonts.Face
}

// NewPageService creates a new PageService instance.
func NewPageService(cfg u.Config, rdb *redis.Client, face *fonts.Face) *PageService {
	return &PageService{
		Config: &cfg, // convert value to pointer
		Redis:  rdb,
		Face:   face,
	}
}

// HandleHome serves the default route: the home view wrapped in the layout
// shell. Rendered documents are cached in Redis when enabled; cache failures
// fall back to a fresh render, never to an error.
func (svc *PageService) HandleHome(c *fiber.Ctx) error {
	cacheKey := computePageCacheKey(c.Path())

	if svc.Redis != nil && svc.Config.Cache.PageCacheEnabled {
		if cached, err := getCachedPage(c, svc.Redis, cacheKey); err == nil && cached != nil {
			return c.Send(cached)
		}
	}

	doc, err := layout.Render(views.Home())
	if err != nil {
		u.Error("Page render failed", "path", c.Path(), "error", err.Error())
		return fiber.NewError(fiber.StatusInternalServerError, "Page render failed")
	}

	if svc.Redis != nil && svc.Config.Cache.PageCacheEnabled {
		setCachedPage(c, svc.Redis, cacheKey, []byte(doc), svc.Config.Cache.PageCacheTTL)
	}

	requestID := c.Get("X-Request-ID")
	u.Debug("Page rendered", "path", c.Path(), "request_id", requestID)

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(doc)
}

// HandleFontCSS serves the generated font stylesheet.
func (svc *PageService) HandleFontCSS(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.SendString(svc.Face.CSS())
}

// HandleFontFile serves one resolved woff2 file. Font bytes never change for
// the process lifetime, so they are marked immutable.
func (svc *PageService) HandleFontFile(c *fiber.Ctx) error {
	name := c.Params("file")
	data, ok := svc.Face.File(name)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Unknown font file")
	}
	c.Set(fiber.HeaderContentType, "font/woff2")
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.Send(data)
}

// computePageCacheKey creates a SHA256-based cache key from the request path
// and the current shell version, so stale documents die with the template.
func computePageCacheKey(path string) string {
	h := sha256.New()
	h.Write([]byte(path))
	h.Write([]byte(layout.Version()))
	return "pagecache:" + hex.EncodeToString(h.Sum(nil))
}

// getCachedPage attempts to retrieve a cached document from Redis.
func getCachedPage(c *fiber.Ctx, rdb *redis.Client, key string) ([]byte, error) {
	ctxRedis, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()

	cached, err := rdb.Get(ctxRedis, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		u.Warn("Redis read failed", "error", err)
		return nil, err
	}

	u.Info("Page cache hit", "key", key)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return cached, nil
}

// setCachedPage stores a rendered document in Redis.
func setCachedPage(c *fiber.Ctx, rdb *redis.Client, key string, data []byte, ttl time.Duration) {
	ctxRedis, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()

	if ttl <= 0 {
		ttl = 1 * time.Minute
	}

	if err := rdb.Set(ctxRedis, key, data, ttl).Err(); err != nil {
		u.Warn("Redis write failed", "error", err)
	}
}
