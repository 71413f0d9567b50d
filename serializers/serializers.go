// Package serializers maps models onto the JSON shapes returned by the API.
// Only the fields listed here ever leave the server.
package serializers

import (
	"time"

	"github.com/mayra-Sanchez/wm-backend/media"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/shopspring/decimal"
)

// Prices carry three decimals, order totals two.
const (
	priceScale = 3
	totalScale = 2
)

func price(d decimal.Decimal) string { return d.StringFixed(priceScale) }

type ProductDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Stock       int    `json:"stock"`
	Slug        string `json:"slug"`
	Category    uint   `json:"category"`
}

func Product(p *models.Product, store *media.Store) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       price(p.Price),
		Image:       store.PublicURL(p.Image),
		Stock:       p.Stock,
		Slug:        p.Slug,
		Category:    p.CategoryID,
	}
}

func Products(ps []models.Product, store *media.Store) []ProductDTO {
	out := make([]ProductDTO, 0, len(ps))
	for i := range ps {
		out = append(out, Product(&ps[i], store))
	}
	return out
}

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func Category(c *models.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name}
}

func Categories(cs []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(cs))
	for i := range cs {
		out = append(out, Category(&cs[i]))
	}
	return out
}

// UserDTO never includes the password hash.
type UserDTO struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func User(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func Users(us []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(us))
	for i := range us {
		out = append(out, User(&us[i]))
	}
	return out
}

// CartLineDTO's ID is the product id, which is what the cart endpoints take.
type CartLineDTO struct {
	ID        uint   `json:"id"`
	Product   string `json:"product"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartView struct {
	Products []CartLineDTO `json:"products"`
	Total    string        `json:"total"`
}

// Cart renders a cart; a nil cart renders as empty.
func Cart(c *models.Cart) CartView {
	view := CartView{Products: []CartLineDTO{}, Total: price(c.Total())}
	if c == nil {
		return view
	}
	for i := range c.Lines {
		l := &c.Lines[i]
		view.Products = append(view.Products, CartLineDTO{
			ID:        l.ProductID,
			Product:   l.Product.Name,
			Price:     price(l.Product.Price),
			Quantity:  l.Quantity,
			LineTotal: price(l.LineTotal()),
		})
	}
	return view
}

type OrderLineDTO struct {
	ID        uint   `json:"id"`
	Product   uint   `json:"product"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type OrderDTO struct {
	ID        uint           `json:"id"`
	Customer  *uint          `json:"customer"`
	Total     string         `json:"total"`
	CreatedAt time.Time      `json:"created_at"`
	Lines     []OrderLineDTO `json:"lines"`
}

func Order(o *models.Order) OrderDTO {
	dto := OrderDTO{
		ID:        o.ID,
		Customer:  o.CustomerID,
		Total:     o.Total.StringFixed(totalScale),
		CreatedAt: o.CreatedAt,
		Lines:     make([]OrderLineDTO, 0, len(o.Lines)),
	}
	for i := range o.Lines {
		l := &o.Lines[i]
		dto.Lines = append(dto.Lines, OrderLineDTO{
			ID:        l.ID,
			Product:   l.ProductID,
			Name:      l.Name,
			Price:     price(l.Price),
			Quantity:  l.Quantity,
			LineTotal: price(l.LineTotal()),
		})
	}
	return dto
}

func Orders(list []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(list))
	for i := range list {
		out = append(out, Order(&list[i]))
	}
	return out
}
