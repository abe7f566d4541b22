package handler

import (
	"time"

	"heatmap/internal/domain/entity"
)

// View models decouple the JSON wire format from the domain entities.
// Fields marshal in snake_case and never include internal-only data.

type userView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserView(user *entity.User) *userView {
	return &userView{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type locationView struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	BusinessType string    `json:"business_type"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toLocationView(location *entity.Location) *locationView {
	return &locationView{
		ID:           location.ID.String(),
		UserID:       location.UserID.String(),
		Name:         location.Name,
		Address:      location.Address,
		City:         location.City,
		State:        location.State,
		ZipCode:      location.ZipCode,
		Latitude:     location.Latitude,
		Longitude:    location.Longitude,
		BusinessType: location.BusinessType.String(),
		Notes:        location.Notes,
		CreatedAt:    location.CreatedAt,
	}
}

func toLocationViews(locations []*entity.Location) []*locationView {
	views := make([]*locationView, 0, len(locations))
	for _, location := range locations {
		views = append(views, toLocationView(location))
	}

	return views
}

type searchHistoryView struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	ZipCode    string          `json:"zip_code"`
	Filters    entity.Document `json:"filters,omitempty"`
	SearchedAt time.Time       `json:"searched_at"`
}

func toSearchHistoryView(search *entity.SearchHistory) *searchHistoryView {
	return &searchHistoryView{
		ID:         search.ID.String(),
		UserID:     search.UserID.String(),
		ZipCode:    search.ZipCode,
		Filters:    search.Filters,
		SearchedAt: search.SearchedAt,
	}
}

func toSearchHistoryViews(searches []*entity.SearchHistory) []*searchHistoryView {
	views := make([]*searchHistoryView, 0, len(searches))
	for _, search := range searches {
		views = append(views, toSearchHistoryView(search))
	}

	return views
}

type savedAddressView struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Name        string          `json:"name,omitempty"`
	Address     string          `json:"address"`
	City        string          `json:"city,omitempty"`
	State       string          `json:"state,omitempty"`
	ZipCode     string          `json:"zip_code,omitempty"`
	AddressType string          `json:"address_type"`
	FiltersUsed entity.Document `json:"filters_used,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toSavedAddressView(address *entity.SavedAddress) *savedAddressView {
	return &savedAddressView{
		ID:          address.ID.String(),
		UserID:      address.UserID.String(),
		Name:        address.Name,
		Address:     address.Address,
		City:        address.City,
		State:       address.State,
		ZipCode:     address.ZipCode,
		AddressType: address.AddressType.String(),
		FiltersUsed: address.FiltersUsed,
		Notes:       address.Notes,
		CreatedAt:   address.CreatedAt,
	}
}

func toSavedAddressViews(addresses []*entity.SavedAddress) []*savedAddressView {
	views := make([]*savedAddressView, 0, len(addresses))
	for _, address := range addresses {
		views = append(views, toSavedAddressView(address))
	}

	return views
}
