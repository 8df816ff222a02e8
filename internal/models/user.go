package models

// User is the candidate-side principal. Identity is bound to the external
// provider's subject id; the row is provisioned lazily on first authenticated
// contact or through the explicit sync endpoint.
type User struct {
	BaseModel
	ExternalID string `gorm:"uniqueIndex;not null" json:"externalId"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"not null" json:"email"`
	Image      string `json:"image"`
	Resume     string `gorm:"default:''" json:"resume"` // empty string = none
}

// Placeholder profile values used by lazy provisioning.
const (
	PlaceholderName  = "Unnamed User"
	PlaceholderEmail = "noemail@example.com"
	PlaceholderImage = "https://via.placeholder.com/150"
)
