package dto

type AddRestaurantInput struct {
	Name     string `json:"name" binding:"required,max=255"`
	Location string `json:"location" binding:"required,max=255"`
	Category string `json:"category" binding:"required,max=100"`
}
