package models

// UserProfile is the locally persisted account card shown in settings.
// It is client-side state only; no backend endpoint owns it.
type UserProfile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Bio        string `json:"bio"`
	Location   string `json:"location"`
	Avatar     string `json:"avatar"`
	DateJoined string `json:"dateJoined"`
}

// DefaultProfile is the profile shown before the user ever saves one.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:       "John Doe",
		Email:      "john.doe@company.com",
		Phone:      "+1 (555) 123-4567",
		Role:       "System Administrator",
		Department: "Admin",
		Bio:        "Experienced inventory manager with 5+ years in supply chain management.",
		Location:   "San Francisco, CA",
		Avatar:     "",
		DateJoined: "2023-01-15",
	}
}
