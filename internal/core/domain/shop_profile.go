package domain

// ShopProfile is the single settings record holding the shop identity
// printed on invoices and reports.
type ShopProfile struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	FooterNote string `json:"footerNote"`
	Logo       string `json:"logo"` // data URL or empty
}
