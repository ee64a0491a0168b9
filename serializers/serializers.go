// Package serializers holds the explicit response shapes for every entity.
// Handlers never marshal GORM models directly; each endpoint builds one of
// these structs with a hand-written field list.
package serializers

import (
	"time"

	"github.com/shchutski73/sport-store/models"
)

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, IsStaff: u.IsStaff}
}

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func NewCategoryResponse(c models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description}
}

type SpecificationResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ReviewResponse struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product_id"`
	User      string    `json:"user"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func NewReviewResponse(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		User:      r.User.Username,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

type ProductResponse struct {
	ID             uint                    `json:"id"`
	Name           string                  `json:"name"`
	Slug           string                  `json:"slug"`
	Description    string                  `json:"description"`
	Price          float64                 `json:"price"`
	ImageURL       string                  `json:"image_url"`
	Category       *CategoryResponse       `json:"category"`
	InStock        bool                    `json:"in_stock"`
	Specifications []SpecificationResponse `json:"specifications"`
	Reviews        []ReviewResponse        `json:"reviews"`
	CreatedAt      time.Time               `json:"created_at"`
}

func NewProductResponse(p models.Product) ProductResponse {
	resp := ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Price:          p.Price,
		ImageURL:       p.ImageURL,
		InStock:        p.InStock,
		Specifications: make([]SpecificationResponse, 0, len(p.Specifications)),
		Reviews:        make([]ReviewResponse, 0, len(p.Reviews)),
		CreatedAt:      p.CreatedAt,
	}
	if p.Category != nil {
		cat := NewCategoryResponse(*p.Category)
		resp.Category = &cat
	}
	for _, spec := range p.Specifications {
		resp.Specifications = append(resp.Specifications, SpecificationResponse{Name: spec.Name, Value: spec.Value})
	}
	for _, review := range p.Reviews {
		resp.Reviews = append(resp.Reviews, NewReviewResponse(review))
	}
	return resp
}

func NewProductListResponse(products []models.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, NewProductResponse(p))
	}
	return resp
}

type CartItemResponse struct {
	ID         uint            `json:"id"`
	Product    ProductResponse `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalPrice float64         `json:"total_price"`
}

func NewCartItemResponse(item models.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:         item.ID,
		Product:    NewProductResponse(item.Product),
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice(),
	}
}

type CartResponse struct {
	ID         uint               `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice float64            `json:"total_price"`
	CreatedAt  time.Time          `json:"created_at"`
}

func NewCartResponse(cart models.Cart) CartResponse {
	resp := CartResponse{
		ID:        cart.ID,
		Items:     make([]CartItemResponse, 0, len(cart.Items)),
		CreatedAt: cart.CreatedAt,
	}
	for _, item := range cart.Items {
		line := NewCartItemResponse(item)
		resp.TotalPrice += line.TotalPrice
		resp.Items = append(resp.Items, line)
	}
	return resp
}

type OrderItemResponse struct {
	ID         uint            `json:"id"`
	Product    ProductResponse `json:"product"`
	Quantity   int             `json:"quantity"`
	Price      float64         `json:"price"`
	TotalPrice float64         `json:"total_price"`
}

type OrderResponse struct {
	ID            uint                 `json:"id"`
	OrderRef      string               `json:"order_ref"`
	UserID        uint                 `json:"user_id"`
	Status        string               `json:"status"`
	TotalPrice    float64              `json:"total_price"`
	TotalItems    int                  `json:"total_items"`
	PaymentMethod string               `json:"payment_method"`
	PaymentCard   *PaymentCardResponse `json:"payment_card"`
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Address       string               `json:"address"`
	City          string               `json:"city"`
	PostalCode    string               `json:"postal_code"`
	Notes         string               `json:"notes"`
	Items         []OrderItemResponse  `json:"items"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func NewOrderResponse(order models.Order) OrderResponse {
	resp := OrderResponse{
		ID:            order.ID,
		OrderRef:      order.OrderRef,
		UserID:        order.UserID,
		Status:        string(order.Status),
		TotalPrice:    order.TotalPrice,
		PaymentMethod: string(order.PaymentMethod),
		FirstName:     order.FirstName,
		LastName:      order.LastName,
		Email:         order.Email,
		Phone:         order.Phone,
		Address:       order.Address,
		City:          order.City,
		PostalCode:    order.PostalCode,
		Notes:         order.Notes,
		Items:         make([]OrderItemResponse, 0, len(order.Items)),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	if order.PaymentCard != nil {
		card := NewPaymentCardResponse(*order.PaymentCard)
		resp.PaymentCard = &card
	}
	for _, item := range order.Items {
		resp.TotalItems += item.Quantity
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:         item.ID,
			Product:    NewProductResponse(item.Product),
			Quantity:   item.Quantity,
			Price:      item.Price,
			TotalPrice: item.TotalPrice(),
		})
	}
	return resp
}

func NewOrderListResponse(orders []models.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, NewOrderResponse(order))
	}
	return resp
}

type PaymentCardResponse struct {
	ID             uint      `json:"id"`
	CardNumber     string    `json:"card_number"`
	CardHolderName string    `json:"card_holder_name"`
	ExpiryMonth    int       `json:"expiry_month"`
	ExpiryYear     int       `json:"expiry_year"`
	IsDefault      bool      `json:"is_default"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewPaymentCardResponse(card models.PaymentCard) PaymentCardResponse {
	return PaymentCardResponse{
		ID:             card.ID,
		CardNumber:     card.CardNumber,
		CardHolderName: card.CardHolderName,
		ExpiryMonth:    card.ExpiryMonth,
		ExpiryYear:     card.ExpiryYear,
		IsDefault:      card.IsDefault,
		CreatedAt:      card.CreatedAt,
	}
}

type ContactResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContactResponse(contact models.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
	}
}
