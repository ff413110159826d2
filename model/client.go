package model

// Client is the holder of an account. It is immutable once created.
type Client struct {
	name  string
	taxID string
}

func NewClient(name, taxID string) Client {
	return Client{name: name, taxID: taxID}
}

func (c Client) Name() string {
	return c.name
}

// TaxID returns the CPF the registry keys accounts by.
func (c Client) TaxID() string {
	return c.taxID
}
