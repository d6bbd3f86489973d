package shipping

// CostOption is one priced service offered by a courier for a destination,
// e.g. {"REG", "Layanan Reguler", 9000, "2-3"}.
type CostOption struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Service     string `json:"service"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	ETD         string `json:"etd"`
}

// CostQuery identifies a rate request: courier code plus destination
// district and total weight in grams.
type CostQuery struct {
	Courier     string
	Origin      string
	Destination string
	Weight      int
}
