package entities

type Product struct {
	ID         string
	Name       string
	Slug       string
	PriceMinor int64
	Stock      int
	IsActive   bool
}
