package models

// PurchaseTypeReportCredits tags checkout sessions that grant report credits.
const PurchaseTypeReportCredits = "report_credits"

// PriceItem is a server-side catalogue entry. Client-sent prices are never used.
type PriceItem struct {
	ID           string
	Name         string
	Description  string
	AmountCents  int64
	Currency     string
	CreditsGrant int
}

var priceItems = map[string]PriceItem{
	"single_report": {
		ID:           "single_report",
		Name:         "Single Cosmic Report",
		Description:  "One personalized AI natal chart report.",
		AmountCents:  1999,
		Currency:     "usd",
		CreditsGrant: 1,
	},
	"3_pack_bundle": {
		ID:           "3_pack_bundle",
		Name:         "3-Pack Cosmic Reports",
		Description:  "Three personalized AI natal chart reports.",
		AmountCents:  4999,
		Currency:     "usd",
		CreditsGrant: 3,
	},
}

// LookupPriceItem returns the catalogue entry for id.
func LookupPriceItem(id string) (PriceItem, bool) {
	item, ok := priceItems[id]
	return item, ok
}
