package client

import (
	"context"
	"sync"

	"gamestore/models"

	"golang.org/x/sync/errgroup"
)

// AdminConsole loads and mutates the full catalog through an active admin
// session. It caches the admin-scoped and public collections so a view always
// has both sides of the active-flag fence.
type AdminConsole struct {
	session *AdminSession

	mu            sync.Mutex
	adminGames    []models.Game
	adminNews     []models.NewsItem
	adminBanners  []models.Banner
	orders        []models.Order
	publicGames   []models.Game
	publicNews    []models.NewsItem
	publicBanners []models.Banner
}

func (c *Client) NewAdminConsole(session *AdminSession) *AdminConsole {
	return &AdminConsole{session: session}
}

// Bootstrap fetches the four admin collections together. Unlike the public
// catalog, the group fails as a whole: partial admin state is not meaningful.
func (a *AdminConsole) Bootstrap(ctx context.Context) error {
	token := a.session.Token()
	var games []models.Game
	var news []models.NewsItem
	var banners []models.Banner
	var orders []models.Order

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var out struct {
			Games []models.Game `json:"games"`
		}
		if err := a.session.c.doJSON(ctx, "GET", "/api/admin/games", token, nil, &out); err != nil {
			return err
		}
		games = out.Games
		return nil
	})
	g.Go(func() error {
		var out struct {
			News []models.NewsItem `json:"news"`
		}
		if err := a.session.c.doJSON(ctx, "GET", "/api/admin/news", token, nil, &out); err != nil {
			return err
		}
		news = out.News
		return nil
	})
	g.Go(func() error {
		var out struct {
			Banners []models.Banner `json:"banners"`
		}
		if err := a.session.c.doJSON(ctx, "GET", "/api/admin/banners", token, nil, &out); err != nil {
			return err
		}
		banners = out.Banners
		return nil
	})
	g.Go(func() error {
		var out struct {
			Orders []models.Order `json:"orders"`
		}
		if err := a.session.c.doJSON(ctx, "GET", "/api/admin/orders", token, nil, &out); err != nil {
			return err
		}
		orders = out.Orders
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	a.mu.Lock()
	a.adminGames = games
	a.adminNews = news
	a.adminBanners = banners
	a.orders = orders
	a.mu.Unlock()
	return nil
}

func (a *AdminConsole) Games() []models.Game {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adminGames
}

func (a *AdminConsole) News() []models.NewsItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adminNews
}

func (a *AdminConsole) Banners() []models.Banner {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adminBanners
}

func (a *AdminConsole) Orders() []models.Order {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.orders
}

func (a *AdminConsole) PublicGames() []models.Game {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.publicGames
}

func (a *AdminConsole) PublicNews() []models.NewsItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.publicNews
}

func (a *AdminConsole) PublicBanners() []models.Banner {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.publicBanners
}

// GamePayload is the admin form for a game: a dynamic list of packages, at
// least one entry required server-side.
type GamePayload struct {
	Name          string                `json:"name"`
	NameAr        string                `json:"name_ar"`
	Description   string                `json:"description"`
	DescriptionAr string                `json:"description_ar"`
	ImageURL      string                `json:"image_url"`
	Prices        []models.PricePackage `json:"prices"`
	IsActive      bool                  `json:"is_active"`
}

type NewsPayload struct {
	Title     string `json:"title"`
	TitleAr   string `json:"title_ar"`
	Content   string `json:"content"`
	ContentAr string `json:"content_ar"`
	IsActive  bool   `json:"is_active"`
}

type BannerPayload struct {
	Title    string `json:"title"`
	TitleAr  string `json:"title_ar"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link,omitempty"`
	IsActive bool   `json:"is_active"`
}

func (a *AdminConsole) CreateGame(ctx context.Context, p GamePayload) error {
	return a.mutate(ctx, "POST", "/api/admin/games", p, "games")
}

func (a *AdminConsole) UpdateGame(ctx context.Context, id string, p GamePayload) error {
	return a.mutate(ctx, "PUT", "/api/admin/games/"+id, p, "games")
}

func (a *AdminConsole) DeleteGame(ctx context.Context, id string) error {
	return a.mutate(ctx, "DELETE", "/api/admin/games/"+id, nil, "games")
}

func (a *AdminConsole) CreateNews(ctx context.Context, p NewsPayload) error {
	return a.mutate(ctx, "POST", "/api/admin/news", p, "news")
}

func (a *AdminConsole) UpdateNews(ctx context.Context, id string, p NewsPayload) error {
	return a.mutate(ctx, "PUT", "/api/admin/news/"+id, p, "news")
}

func (a *AdminConsole) DeleteNews(ctx context.Context, id string) error {
	return a.mutate(ctx, "DELETE", "/api/admin/news/"+id, nil, "news")
}

func (a *AdminConsole) CreateBanner(ctx context.Context, p BannerPayload) error {
	return a.mutate(ctx, "POST", "/api/admin/banners", p, "banners")
}

func (a *AdminConsole) UpdateBanner(ctx context.Context, id string, p BannerPayload) error {
	return a.mutate(ctx, "PUT", "/api/admin/banners/"+id, p, "banners")
}

func (a *AdminConsole) DeleteBanner(ctx context.Context, id string) error {
	return a.mutate(ctx, "DELETE", "/api/admin/banners/"+id, nil, "banners")
}

// mutate submits one create/update/delete and then re-fetches both the admin
// and the public collection for the resource: admin edits change public
// visibility, so the storefront view must follow immediately.
func (a *AdminConsole) mutate(ctx context.Context, method, path string, payload any, resource string) error {
	if err := a.session.c.doJSON(ctx, method, path, a.session.Token(), payload, nil); err != nil {
		return err
	}
	return a.refresh(ctx, resource)
}

func (a *AdminConsole) refresh(ctx context.Context, resource string) error {
	token := a.session.Token()

	var adminOut, publicOut struct {
		Games   []models.Game     `json:"games"`
		News    []models.NewsItem `json:"news"`
		Banners []models.Banner   `json:"banners"`
	}
	if err := a.session.c.doJSON(ctx, "GET", "/api/admin/"+resource, token, nil, &adminOut); err != nil {
		return err
	}
	if err := a.session.c.doJSON(ctx, "GET", "/api/"+resource, "", nil, &publicOut); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	switch resource {
	case "games":
		a.adminGames = adminOut.Games
		a.publicGames = publicOut.Games
	case "news":
		a.adminNews = adminOut.News
		a.publicNews = publicOut.News
	case "banners":
		a.adminBanners = adminOut.Banners
		a.publicBanners = publicOut.Banners
	}
	return nil
}
