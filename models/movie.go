package models

// Movie represents a movie row in the store
type Movie struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Overview string  `json:"overview"`
	Year     int     `json:"year"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
}

// MovieInput holds data for creating/updating a movie.
// The id is never taken from the body; it comes from the path.
type MovieInput struct {
	Title    string  `json:"title" binding:"required,min=5,max=15"`
	Overview string  `json:"overview" binding:"required,min=5,max=100"`
	Year     int     `json:"year" binding:"required,lte=2025"`
	Rating   float64 `json:"rating" binding:"required,gte=1,lte=10"`
	Category string  `json:"category" binding:"required,min=5,max=15"`
}

// MovieCategoryQuery binds the ?category= filter
type MovieCategoryQuery struct {
	Category string `form:"category" binding:"required,min=5,max=15"`
}
