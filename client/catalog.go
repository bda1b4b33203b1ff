package client

import (
	"context"
	"log"
	"sync"

	"gamestore/models"
)

// Catalog is the public storefront data set.
type Catalog struct {
	Games   []models.Game
	News    []models.NewsItem
	Banners []models.Banner
}

// FetchCatalog loads the three public collections concurrently. Each fetch is
// independent: a failed section is logged and stays empty while the others
// still come back.
func (c *Client) FetchCatalog(ctx context.Context) *Catalog {
	cat := &Catalog{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		var out struct {
			Games []models.Game `json:"games"`
		}
		if err := c.doJSON(ctx, "GET", "/api/games", "", nil, &out); err != nil {
			log.Printf("fetch games failed: %v", err)
			return
		}
		cat.Games = out.Games
	}()

	go func() {
		defer wg.Done()
		var out struct {
			News []models.NewsItem `json:"news"`
		}
		if err := c.doJSON(ctx, "GET", "/api/news", "", nil, &out); err != nil {
			log.Printf("fetch news failed: %v", err)
			return
		}
		cat.News = out.News
	}()

	go func() {
		defer wg.Done()
		var out struct {
			Banners []models.Banner `json:"banners"`
		}
		if err := c.doJSON(ctx, "GET", "/api/banners", "", nil, &out); err != nil {
			log.Printf("fetch banners failed: %v", err)
			return
		}
		cat.Banners = out.Banners
	}()

	wg.Wait()
	return cat
}
