package models

// Client is an organisation that issues RFPs
type Client struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	ContactPerson string `json:"contact_person" yaml:"contact_person"`
	Email         string `json:"email" yaml:"email"`
}

// GetID returns the client id, used by the CLI quiet output mode
func (c Client) GetID() string {
	return c.ID
}
