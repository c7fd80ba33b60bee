package domain

import "time"

type NewsCategory string

const (
	NewsAll     NewsCategory = "all"
	NewsStocks  NewsCategory = "stocks"
	NewsCrypto  NewsCategory = "crypto"
	NewsEconomy NewsCategory = "economy"
)

type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Source      string    `json:"source"`
	Author      string    `json:"author"`
	URL         string    `json:"url"`
	Image       string    `json:"image,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Category    string    `json:"category"`
	Fallback    bool      `json:"fallback,omitempty"`
}
