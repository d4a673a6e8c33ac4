// Package models contains the domain models shared by repositories, services and handlers.
package models

import "slices"

// Cereal type codes: eaten cold or hot.
const (
	TypeCold = "C"
	TypeHot  = "H"
)

// Cereal represents one cereal nutrition record.
// All nutritional values are per serving; weight is in ounces.
type Cereal struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Mfr      string  `json:"mfr"`
	Type     string  `json:"type"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Fat      int     `json:"fat"`
	Sodium   int     `json:"sodium"`
	Fiber    float64 `json:"fiber"`
	Carbo    float64 `json:"carbo"`
	Sugars   int     `json:"sugars"`
	Potass   int     `json:"potass"`
	Vitamins int     `json:"vitamins"`
	Shelf    int     `json:"shelf"`
	Weight   float64 `json:"weight"`
	Cups     float64 `json:"cups"`
	Rating   float64 `json:"rating"`
}

// CerealRequest is the create-or-update payload.
// A nil ID means "create a new record"; a present ID means "overwrite that record".
type CerealRequest struct {
	ID       *int    `json:"id"`
	Name     string  `json:"name"`
	Mfr      string  `json:"mfr"`
	Type     string  `json:"type"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Fat      int     `json:"fat"`
	Sodium   int     `json:"sodium"`
	Fiber    float64 `json:"fiber"`
	Carbo    float64 `json:"carbo"`
	Sugars   int     `json:"sugars"`
	Potass   int     `json:"potass"`
	Vitamins int     `json:"vitamins"`
	Shelf    int     `json:"shelf"`
	Weight   float64 `json:"weight"`
	Cups     float64 `json:"cups"`
	Rating   float64 `json:"rating"`
}

// ToCereal converts the request payload into a Cereal model.
// The ID is left zero for create requests.
func (r *CerealRequest) ToCereal() *Cereal {
	c := &Cereal{
		Name:     r.Name,
		Mfr:      r.Mfr,
		Type:     r.Type,
		Calories: r.Calories,
		Protein:  r.Protein,
		Fat:      r.Fat,
		Sodium:   r.Sodium,
		Fiber:    r.Fiber,
		Carbo:    r.Carbo,
		Sugars:   r.Sugars,
		Potass:   r.Potass,
		Vitamins: r.Vitamins,
		Shelf:    r.Shelf,
		Weight:   r.Weight,
		Cups:     r.Cups,
		Rating:   r.Rating,
	}
	if r.ID != nil {
		c.ID = *r.ID
	}
	return c
}

// ValidSearchFields lists the cereal columns the search endpoint may filter on.
// Field names arriving from the outside must be checked against this list
// before they are ever placed into a query.
var ValidSearchFields = []string{
	"id",
	"name",
	"mfr",
	"type",
	"calories",
	"protein",
	"fat",
	"sodium",
	"fiber",
	"carbo",
	"sugars",
	"potass",
	"vitamins",
	"shelf",
	"weight",
	"cups",
	"rating",
}

// IsValidSearchField reports whether field is a known cereal column.
func IsValidSearchField(field string) bool {
	return slices.Contains(ValidSearchFields, field)
}
