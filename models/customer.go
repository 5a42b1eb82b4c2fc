package models

type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CustomerInput carries the fields accepted when registering a customer.
// Commas are rejected to keep the directory file plain comma-separated text.
type CustomerInput struct {
	Name    string `json:"name" validate:"required,max=49,excludesall=0x2C"`
	Phone   string `json:"phone" validate:"required,max=14,excludesall=0x2C"`
	Email   string `json:"email" validate:"omitempty,max=49,email"`
	Address string `json:"address" validate:"max=49,excludesall=0x2C"`
}
