package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nikolayk812/cartstate-demo/internal/domain"
)

var ErrNotFound = errors.New("not found")

// Client reads stock and products from the storefront backend.
// It imposes no timeout of its own; cancel through ctx.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("baseURL[%s] is not absolute", baseURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: u, httpClient: httpClient}, nil
}

func (c *Client) GetStock(ctx context.Context, productID int) (domain.Stock, error) {
	var stock domain.Stock
	if err := c.get(ctx, "stock/"+strconv.Itoa(productID), &stock); err != nil {
		return domain.Stock{}, fmt.Errorf("get stock[%d]: %w", productID, err)
	}
	stock.ProductID = productID

	return stock, nil
}

func (c *Client) GetProduct(ctx context.Context, productID int) (domain.Product, error) {
	var product domain.Product
	if err := c.get(ctx, "products/"+strconv.Itoa(productID), &product); err != nil {
		return domain.Product{}, fmt.Errorf("get product[%d]: %w", productID, err)
	}

	if product.ID == 0 {
		return domain.Product{}, fmt.Errorf("get product[%d]: empty body", productID)
	}

	return product, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "products", &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	endpoint := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
