package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellbook/services/booking"
	"wellbook/utils"
)

// Search responses are cached whole, keyed by category, with a short TTL.
// A successful booking deletes the entries for the provider's categories so
// freed-up or claimed slots show up on the next search.

const cacheOpTimeout = 500 * time.Millisecond

func cachedSearch(c *gin.Context, category string) ([]byte, bool) {
	if !utils.CacheEnabled() {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), cacheOpTimeout)
	defer cancel()

	body, err := utils.GetCacheClient().Get(ctx, utils.SearchCachePrefix+category).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

func storeSearch(c *gin.Context, category string, response gin.H) {
	if !utils.CacheEnabled() {
		return
	}
	body, err := json.Marshal(response)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), cacheOpTimeout)
	defer cancel()

	if err := utils.GetCacheClient().Set(ctx, utils.SearchCachePrefix+category, body, utils.SearchCacheTTL).Err(); err != nil {
		getLogger(c).Warn("Failed to cache search response", zap.String("category", category), zap.Error(err))
	}
}

func invalidateProviderSearches(c *gin.Context, svc booking.ReservationService, providerID int) {
	if !utils.CacheEnabled() {
		return
	}
	var keys []string
	for _, p := range svc.ListProviders() {
		if p.ID == providerID {
			for _, cat := range p.Categories {
				keys = append(keys, utils.SearchCachePrefix+cat)
			}
			break
		}
	}
	if len(keys) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), cacheOpTimeout)
	defer cancel()

	if err := utils.GetCacheClient().Del(ctx, keys...).Err(); err != nil {
		getLogger(c).Warn("Failed to invalidate search cache", zap.Int("provider_id", providerID), zap.Error(err))
	}
}
