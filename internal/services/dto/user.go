package dto

// SyncUserRequest is the trusted provisioning callback from the identity
// collaborator. Absent profile fields fall back to placeholders on create and
// to the stored values on update.
type SyncUserRequest struct {
	ExternalID string `json:"externalId" validate:"required"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Image      string `json:"image"`
}
