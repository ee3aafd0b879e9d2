package dto

// SettingsUpdateRequest replaces the editable institute settings fields.
type SettingsUpdateRequest struct {
	Name       string                 `json:"name" validate:"required,min=1,max=255"`
	CenterCode string                 `json:"center_code"`
	Address    string                 `json:"address"`
	Phone      string                 `json:"phone"`
	Email      string                 `json:"email" validate:"omitempty,email"`
	Website    string                 `json:"website"`
	Extra      map[string]interface{} `json:"extra"`
}

// SettingsResponse is the institute settings row as surfaced over the API.
type SettingsResponse struct {
	ID         uint                   `json:"id"`
	Name       string                 `json:"name"`
	CenterCode string                 `json:"center_code"`
	Address    string                 `json:"address"`
	Phone      string                 `json:"phone"`
	Email      string                 `json:"email"`
	Website    string                 `json:"website"`
	Logo       string                 `json:"logo"`
	Extra      map[string]interface{} `json:"extra"`
	UpdatedAt  string                 `json:"updated_at"`
}
