package model

// Document is the full-snapshot transfer format: both collections, ids
// included, serialized as indented JSON so exports stay human-diffable.
type Document struct {
	Suppliers []Supplier `json:"suppliers"`
	Products  []Product  `json:"products"`
}
