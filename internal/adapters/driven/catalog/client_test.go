package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vitrine/internal/core/domain"
)

const twoProducts = `[
  {"id":1,"title":"Produit A Test","category":"electronics","description":"Description du produit A",
   "price":99.99,"image":"image1.jpg","rating":{"rate":4.5,"count":120}},
  {"id":2,"title":"Produit B Test","category":"clothing","description":"Description du produit B",
   "price":49.99,"image":"image2.jpg","rating":{"rate":4.0,"count":80}}
]`

// newTestClient starts a server answering every request with handler and
// returns a client pointed at it with throttling disabled.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL), WithRateLimit(0)}, opts...)
	return NewClient(opts...), server
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient()

	assert.Equal(t, "https://fakestoreapi.com", client.BaseURL())
	assert.Equal(t, 5000*time.Millisecond, client.Timeout())
	assert.NotNil(t, client.limiter)
}

func TestNewClientFromSettings(t *testing.T) {
	client := NewClientFromSettings(domain.AppSettings{
		BaseURL:       "http://mirror.example/",
		Timeout:       time.Second,
		RatePerSecond: 0,
	})

	assert.Equal(t, "http://mirror.example", client.BaseURL())
	assert.Equal(t, time.Second, client.Timeout())
	assert.Nil(t, client.limiter)
}

func TestClient_ListProducts_Success(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		jsonHandler(http.StatusOK, twoProducts)(w, r)
	})

	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "/products", gotPath)
	assert.Equal(t, http.MethodGet, gotMethod)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Produit A Test", products[0].Title)
	assert.Equal(t, "electronics", products[0].Category)
	assert.Equal(t, "99.99", products[0].Price.String())
	assert.Equal(t, "4.5", products[0].Rating.Rate.String())
	assert.Equal(t, 120, products[0].Rating.Count)
	assert.Equal(t, "49.99", products[1].Price.String())
}

func TestClient_ListProducts_EmptyBody(t *testing.T) {
	client, _ := newTestClient(t, jsonHandler(http.StatusOK, "[]"))

	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestClient_ListProducts_ServerError(t *testing.T) {
	t.Run("with server message", func(t *testing.T) {
		client, _ := newTestClient(t, jsonHandler(http.StatusInternalServerError, `{"message":"Erreur serveur"}`))

		_, err := client.ListProducts(context.Background())

		var serverErr *domain.ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, 500, serverErr.Status)
		assert.Equal(t, "Erreur serveur", serverErr.Message)
		assert.Equal(t, "Erreur 500: Erreur serveur", err.Error())
	})

	t.Run("without message uses fallback", func(t *testing.T) {
		client, _ := newTestClient(t, jsonHandler(http.StatusServiceUnavailable, `{}`))

		_, err := client.ListProducts(context.Background())

		var serverErr *domain.ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, "Erreur 503: Problème serveur", err.Error())
	})

	t.Run("non JSON body uses fallback", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("nope"))
		})

		_, err := client.ListProducts(context.Background())

		var serverErr *domain.ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, 404, serverErr.Status)
		assert.Equal(t, "Erreur 404: Problème serveur", err.Error())
	})
}

func TestClient_ListProducts_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(WithBaseURL(baseURL), WithRateLimit(0))

	_, err := client.ListProducts(context.Background())

	var unreachable *domain.UnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Contains(t, err.Error(), "Serveur inaccessible")
	assert.NotNil(t, errors.Unwrap(err))
}

func TestClient_ListProducts_TimeoutIsRequestConfigError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, WithTimeout(50*time.Millisecond))

	_, err := client.ListProducts(context.Background())

	var configErr *domain.RequestConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), "Erreur de configuration")
}

func TestClient_ListProducts_InvalidBaseURL(t *testing.T) {
	client := NewClient(WithBaseURL("http://bad host"), WithRateLimit(0))

	_, err := client.ListProducts(context.Background())

	var configErr *domain.RequestConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestClient_ListProducts_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, jsonHandler(http.StatusOK, `{"not":"an array"`))

	_, err := client.ListProducts(context.Background())

	var configErr *domain.RequestConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestClient_ListProducts_CancelledContext(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		jsonHandler(http.StatusOK, "[]")(w, r)
	}, WithRateLimit(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListProducts(ctx)

	var configErr *domain.RequestConfigError
	require.ErrorAs(t, err, &configErr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), hits.Load())
}

func TestClient_GetProduct_Success(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		jsonHandler(http.StatusOK, `{"id":7,"title":"Smartphone","category":"electronics",
			"price":799.99,"rating":{"rate":4.8,"count":300}}`)(w, r)
	})

	product, err := client.GetProduct(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "/products/7", gotPath)
	assert.Equal(t, 7, product.ID)
	assert.Equal(t, "Smartphone", product.Title)
	assert.Equal(t, "799.99", product.Price.String())
}

func TestClient_GetProduct_InvalidID(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	})

	for _, id := range []int{0, -3} {
		_, err := client.GetProduct(context.Background(), id)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, int32(0), hits.Load())
}

// Lookup failures are deliberately flattened into a single message,
// unlike ListProducts which distinguishes causes.
func TestClient_GetProduct_CollapsesEveryFailure(t *testing.T) {
	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name   string
		client func(t *testing.T) *Client
	}{
		{"server error", func(t *testing.T) *Client {
			c, _ := newTestClient(t, jsonHandler(http.StatusInternalServerError, `{"message":"Erreur serveur"}`))
			return c
		}},
		{"not found status", func(t *testing.T) *Client {
			c, _ := newTestClient(t, jsonHandler(http.StatusNotFound, `{}`))
			return c
		}},
		{"empty body", func(t *testing.T) *Client {
			c, _ := newTestClient(t, jsonHandler(http.StatusOK, ``))
			return c
		}},
		{"unreachable", func(t *testing.T) *Client {
			return NewClient(WithBaseURL(closedURL), WithRateLimit(0))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.client(t).GetProduct(context.Background(), 42)

			var notFound *domain.ProductNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, "Produit 42 non trouvé", err.Error())
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.NotNil(t, notFound.Cause)
		})
	}
}

func TestClient_RateLimitSpacesRequests(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		jsonHandler(http.StatusOK, "[]")(w, r)
	}, WithRateLimit(20))

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := client.ListProducts(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), hits.Load())
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}
