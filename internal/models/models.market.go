// FilePath: internal/models/models.market.go
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	CurrencyCode   = "ZMW"
	CurrencySymbol = "K"
)

func init() {
	// prices travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          string          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Quantity    int             `json:"quantity" db:"quantity"`
	VendorID    string          `json:"vendorId" db:"vendor_id"`
	Category    ProductCategory `json:"category" db:"category"`
	ImageURL    string          `json:"imageUrl" db:"image_url"`
	Currency    string          `json:"currency" db:"currency"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

type Order struct {
	ID         string          `json:"id" db:"id"`
	BuyerID    string          `json:"buyerId" db:"buyer_id"`
	ProductID  string          `json:"productId" db:"product_id"`
	Quantity   int             `json:"quantity" db:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice" db:"total_price"`
	Status     OrderStatus     `json:"status" db:"status"`
	Currency   string          `json:"currency" db:"currency"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderTotal is price x quantity rounded to the ngwee
func OrderTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// FormatPrice renders an amount the way the dashboards print it, e.g. "K 1,234.50"
func FormatPrice(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + CurrencySymbol + " " + b.String() + "." + frac
}
