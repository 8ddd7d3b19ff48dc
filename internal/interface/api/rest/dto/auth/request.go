package auth

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	RegisterRequest struct {
		Email       string `json:"email"`
		Username    string `json:"username"`
		Password    string `json:"password"`
		PhoneNumber string `json:"phoneNumber"`
	}
)
