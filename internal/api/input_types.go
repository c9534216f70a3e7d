package api

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	Name            string `json:"name" form:"name"`
}

type forgotPasswordInput struct {
	Email string `json:"email" form:"email"`
}

type resetPasswordInput struct {
	Token           string `json:"token" form:"token"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type profileInput struct {
	Name  string `json:"name" form:"name"`
	Phone string `json:"phone" form:"phone"`
}

type golferInput struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Phone string `json:"phone" form:"phone"`
}

type golferStatusInput struct {
	Year     int    `json:"year" form:"year"`
	IsActive bool   `json:"is_active" form:"is_active"`
	Cabin    string `json:"cabin" form:"cabin"`
}

type championInput struct {
	Year           int    `json:"year" form:"year"`
	GolferID       uint   `json:"golfer_id" form:"golfer_id"`
	DisplayName    string `json:"display_name" form:"display_name"`
	WinningStory   string `json:"winning_story" form:"winning_story"`
	FavoriteMemory string `json:"favorite_memory" form:"favorite_memory"`
	PhotoID        string `json:"photo_id" form:"photo_id"`
}

type newUserInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
	IsAdmin  bool   `json:"is_admin" form:"is_admin"`
	GolferID string `json:"golfer_id" form:"golfer_id"`
}
