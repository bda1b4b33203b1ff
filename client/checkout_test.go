package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"gamestore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testGame() models.Game {
	return models.Game{
		ID:   "game-1",
		Name: "PUBG Mobile UC",
		Prices: datatypes.NewJSONSlice([]models.PricePackage{
			{Amount: "60 يوسي", Price: "150", Currency: "ريال"},
			{Amount: "325 يوسي", Price: "25", Currency: "ريال"},
		}),
	}
}

func TestCheckoutRefusedWithoutPackages(t *testing.T) {
	c := New("http://unused")

	_, err := c.NewCheckout(models.Game{ID: "g", Name: "Empty"}, 0, nil)
	assert.ErrorIs(t, err, ErrNoPackages)

	_, err = c.NewCheckout(testGame(), 5, nil)
	assert.Error(t, err)
}

func TestCheckoutSubmitVerbatimPayload(t *testing.T) {
	var posts int32
	var received OrderDraft

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		atomic.AddInt32(&posts, 1)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"order_id":     "order-9",
			"whatsapp_url": "https://wa.me/967777826667?text=xyz",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ck, err := c.NewCheckout(testGame(), 0, nil)
	require.NoError(t, err)

	ck.Draft.PlayerID = "5551234"
	ck.Draft.CustomerName = "Ahmed"
	ck.Draft.CustomerPhone = "777123456"

	result, err := ck.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&posts), "exactly one POST per submit")
	assert.Equal(t, "order-9", result.OrderID)
	assert.Equal(t, "https://wa.me/967777826667?text=xyz", result.WhatsAppURL, "deep link passed through untouched")

	assert.Equal(t, "game-1", received.GameID)
	assert.Equal(t, "PUBG Mobile UC", received.GameName)
	assert.Equal(t, "150", received.Price)
	assert.Equal(t, "ريال", received.Currency)
	assert.Equal(t, "60 يوسي", received.Amount)
	assert.Equal(t, "5551234", received.PlayerID)
}

func TestCheckoutMissingFieldsRejectedLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("incomplete drafts must not reach the network")
	}))
	defer srv.Close()

	c := New(srv.URL)
	ck, err := c.NewCheckout(testGame(), 0, nil)
	require.NoError(t, err)

	_, err = ck.Submit(context.Background())
	assert.Error(t, err)
}

func TestCheckoutFailureKeepsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	ck, err := c.NewCheckout(testGame(), 1, nil)
	require.NoError(t, err)
	ck.Draft.PlayerID = "999"
	ck.Draft.CustomerName = "Sara"
	ck.Draft.CustomerPhone = "777000111"

	_, err = ck.Submit(context.Background())
	require.Error(t, err)

	// entered data intact for retry
	assert.Equal(t, "999", ck.Draft.PlayerID)
	assert.Equal(t, "Sara", ck.Draft.CustomerName)
	assert.Equal(t, "25", ck.Draft.Price)
}

func TestCheckoutPrefilledFromSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"id":        "u1",
			"username":  "ahmed",
			"email":     "ahmed@example.com",
			"full_name": "Ahmed A",
			"phone":     "777123456",
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	store := NewMemoryStore()
	require.NoError(t, store.Set(UserTokenKey, "tok"))
	session := c.NewUserSession(store)
	require.True(t, session.Restore(context.Background()))

	ck, err := c.NewCheckout(testGame(), 0, session)
	require.NoError(t, err)

	assert.Equal(t, "Ahmed A", ck.Draft.CustomerName)
	assert.Equal(t, "777123456", ck.Draft.CustomerPhone)
	assert.Equal(t, "ahmed@example.com", ck.Draft.CustomerEmail)
}
