package transit

import "golang.org/x/exp/slices"

// LuggageOption is an ancillary price added on top of the base ticket price.
type LuggageOption struct {
	ID    string `json:"id" groups:"basic,detail"`
	Name  string `json:"name" groups:"basic,detail"`
	Price int    `json:"price" groups:"basic,detail"`
}

var LuggageOptions = []LuggageOption{
	{ID: "small", Name: "Small Bag", Price: 0},
	{ID: "medium", Name: "Medium Bag", Price: 500},
	{ID: "large", Name: "Large Bag", Price: 1000},
	{ID: "extra", Name: "Extra Luggage", Price: 2000},
}

// DefaultLuggage is assumed when a purchase names no luggage option.
const DefaultLuggage = "small"

func LuggageByID(id string) (LuggageOption, bool) {
	i := slices.IndexFunc(LuggageOptions, func(option LuggageOption) bool {
		return option.ID == id
	})
	if i == -1 {
		return LuggageOption{}, false
	}
	return LuggageOptions[i], true
}
