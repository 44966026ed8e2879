package models

type Plan struct {
	PriceID  string   `json:"price_id,omitempty"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Credits  int      `json:"credits"`
	Features []string `json:"features"`
}

// PlansResponse maps plan id (e.g. "starter") to its definition.
type PlansResponse struct {
	Plans map[string]Plan `json:"plans"`
}
