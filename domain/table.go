package domain

// Table is a mongo collection name
type Table string

const (
	TablePurchaseFlows Table = "purchase_flows"
)
