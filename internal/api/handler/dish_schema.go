package handler

type dishRequest struct {
	Name          string  `json:"name"           validate:"required"`
	Price         float64 `json:"price"          validate:"required,gt=0"`
	DishTypeID    uint    `json:"dish_type_id"   validate:"required"`
	Description   string  `json:"description"`
	Image         []byte  `json:"image"`
	Energy        int     `json:"energy"         validate:"gte=0"`
	Protein       int     `json:"protein"        validate:"gte=0"`
	Fiber         int     `json:"fiber"          validate:"gte=0"`
	Carbohydrates int     `json:"carbohydrates"  validate:"gte=0"`
	Fats          int     `json:"fats"           validate:"gte=0"`
	IsAvailable   *bool   `json:"is_available"`
}

type dishPageResponse struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}
