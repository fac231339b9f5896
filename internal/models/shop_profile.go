package models

// ShopProfile is the single settings row, keyed by a fixed id.
type ShopProfile struct {
	SettingsID string `db:"settings_id"` // always "profile"
	Name       string `db:"name"`
	Address    string `db:"address"`
	Phone      string `db:"phone"`
	Email      string `db:"email"`
	FooterNote string `db:"footer_note"`
	Logo       string `db:"logo"`
}
