package models

// Computer represents a computer row in the store
type Computer struct {
	ID        int     `json:"id"`
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Color     string  `json:"color"`
	Processor string  `json:"processor"`
	RAM       int     `json:"ram"`
	Storage   int     `json:"storage"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
}

// ComputerInput holds data for creating/updating a computer
type ComputerInput struct {
	Brand     string  `json:"brand" binding:"required,min=2,max=50"`
	Model     string  `json:"model" binding:"required,min=1,max=50"`
	Color     string  `json:"color" binding:"required,min=3,max=30"`
	Processor string  `json:"processor" binding:"required,min=3,max=50"`
	RAM       int     `json:"ram" binding:"required,gte=1,lte=128"`
	Storage   int     `json:"storage" binding:"required,gte=128,lte=4096"`
	Price     float64 `json:"price" binding:"required,gte=100,lte=10000"`
	Category  string  `json:"category" binding:"required,min=3,max=20"`
}

// ComputerBrandQuery binds the ?brand= filter
type ComputerBrandQuery struct {
	Brand string `form:"brand" binding:"required,min=3,max=15"`
}
