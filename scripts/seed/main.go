// Package main implements a standalone seed script that populates a running
// storefront with the embedded sample catalog. It logs in as the default
// admin account and pushes products, categories, banners, and offers
// through the admin API, so the seeded data passes the same validation as
// real admin traffic.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/furnworld/storefront/internal/catalog"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var client = &http.Client{Timeout: 10 * time.Second}

func post(url, token string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("POST %s: status %d: %s", url, resp.StatusCode, string(respBody))
	}
	return nil
}

// login authenticates against the storefront and returns the admin JWT.
func login(baseURL, email, password string) (string, error) {
	data, _ := json.Marshal(map[string]string{"email": email, "password": password})

	resp, err := client.Post(baseURL+"/api/v1/auth/login", "application/json", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("login failed: status %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if envelope.Data.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access token")
	}
	return envelope.Data.AccessToken, nil
}

func main() {
	baseURL := getEnv("STOREFRONT_URL", "http://localhost:8080")
	adminEmail := getEnv("ADMIN_EMAIL", "admin@furnworld.com")
	adminPassword := getEnv("ADMIN_PASSWORD", "admin123")

	log.Printf("seeding storefront at %s", baseURL)

	token, err := login(baseURL, adminEmail, adminPassword)
	if err != nil {
		log.Fatalf("admin login: %v", err)
	}
	log.Println("admin login OK")

	categories := catalog.SampleCategories()
	for _, c := range categories {
		body := map[string]any{
			"name":       c.Name,
			"icon":       c.Icon,
			"sort_order": c.SortOrder,
		}
		if err := post(baseURL+"/api/v1/admin/categories", token, body); err != nil {
			log.Printf("category %q: %v", c.Name, err)
			continue
		}
	}
	log.Printf("seeded %d categories", len(categories))

	products := catalog.SampleProducts()
	for _, p := range products {
		body := map[string]any{
			"name":           p.Name,
			"description":    p.Description,
			"category":       p.Category,
			"subcategory":    p.Subcategory,
			"price":          p.Price,
			"original_price": p.OriginalPrice,
			"images":         p.Images,
			"colors":         p.Colors,
			"materials":      p.Materials,
			"in_stock":       p.InStock,
			"stock_count":    p.StockCount,
			"tags":           p.Tags,
			"dimensions":     p.Dimensions,
			"weight":         p.Weight,
			"is_new":         p.IsNew,
			"is_bestseller":  p.IsBestseller,
			"discount":       p.Discount,
		}
		if err := post(baseURL+"/api/v1/admin/products", token, body); err != nil {
			log.Printf("product %q: %v", p.Name, err)
			continue
		}
	}
	log.Printf("seeded %d products", len(products))

	banners := catalog.SampleBanners()
	for _, b := range banners {
		if err := post(baseURL+"/api/v1/admin/banners", token, b); err != nil {
			log.Printf("banner %q: %v", b.Title, err)
			continue
		}
	}
	log.Printf("seeded %d banners", len(banners))

	offers := catalog.SampleOffers()
	for _, o := range offers {
		if err := post(baseURL+"/api/v1/admin/offers", token, o); err != nil {
			log.Printf("offer %q: %v", o.Title, err)
			continue
		}
	}
	log.Printf("seeded %d offers", len(offers))

	log.Println("seed complete")
}
