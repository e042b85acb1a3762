package models

// Product is immutable reference data, created at startup and never mutated.
type Product struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Price                float64  `json:"price"`
	OriginalPrice        float64  `json:"originalPrice,omitempty"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Image                string   `json:"image"`
	Stock                int      `json:"stock"`
	Rating               float64  `json:"rating"`
	Reviews              int      `json:"reviews"`
	IsOnSale             bool     `json:"isOnSale"`
	IsFeatured           bool     `json:"isFeatured"`
	Tags                 []string `json:"tags"`
	Material             string   `json:"material"`
	SustainabilityRating int      `json:"sustainabilityRating"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Review struct {
	ID        int    `json:"id"`
	ProductID int    `json:"productId"`
	UserID    int    `json:"userId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}
