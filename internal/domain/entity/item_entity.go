package entity

// Item is a free-form record of the items collection. It carries no identity
// of its own; duplicates are allowed.
type Item struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}
