package response_models

// Guide is the structured travel guide returned to the frontend. Field names
// match the JSON schema the prompt instructs the model to fill, so an AI
// completion and a locally generated fallback are indistinguishable to the UI.
type Guide struct {
	CityOverview    CityOverview      `json:"cityOverview"`
	BudgetBreakdown BudgetBreakdown   `json:"budgetBreakdown"`
	Itinerary       Itinerary         `json:"itinerary"`
	Attractions     AttractionSection `json:"attractions"`
	Food            FoodSection       `json:"food"`
	Accommodation   LodgingSection    `json:"accommodation"`
	Tips            TipSection        `json:"tips"`
}

type CityOverview struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

type BudgetBreakdown struct {
	Title string       `json:"title"`
	Total int          `json:"total"`
	Items []BudgetItem `json:"items"`
}

type BudgetItem struct {
	Category    string `json:"category"`
	Amount      int    `json:"amount"`
	Percentage  int    `json:"percentage"`
	Description string `json:"description"`
}

type Itinerary struct {
	Title string         `json:"title"`
	Days  []ItineraryDay `json:"days"`
}

type ItineraryDay struct {
	Day        int        `json:"day"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Cost     string `json:"cost"`
	Tips     string `json:"tips"`
}

type AttractionSection struct {
	Title string       `json:"title"`
	Items []Attraction `json:"items"`
}

type Attraction struct {
	Name        string `json:"name"`
	Cost        string `json:"cost"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
	Tips        string `json:"tips"`
}

type FoodSection struct {
	Title string     `json:"title"`
	Items []FoodItem `json:"items"`
}

type FoodItem struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type LodgingSection struct {
	Title string        `json:"title"`
	Items []LodgingItem `json:"items"`
}

type LodgingItem struct {
	Type       string   `json:"type"`
	PriceRange string   `json:"priceRange"`
	Location   string   `json:"location"`
	Features   []string `json:"features"`
}

type TipSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// TravelStyle is one selectable entry of the style catalog endpoint.
type TravelStyle struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}
