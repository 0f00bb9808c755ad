package domain

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	ZipCode   string `json:"zipCode,omitempty"`
	City      string `json:"city,omitempty"`
}
